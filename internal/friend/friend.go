package friend

import (
	"time"

	"bookduck/internal/skin"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusAccepted RequestStatus = "ACCEPTED"
)

type Request struct {
	ID         string        `json:"id"`
	SenderID   string        `json:"sender_id"`
	ReceiverID string        `json:"receiver_id"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Friend is stored once per accepted request: User1 accepted, User2 asked.
type Friend struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1_id"`
	User2ID   string    `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RequestUnit is a request as listed to one side. Nickname is the other
// party's.
type RequestUnit struct {
	RequestID string        `json:"request_id"`
	Nickname  string        `json:"nickname"`
	Status    RequestStatus `json:"status"`
}

// FriendRow is a Friend joined with the friend's nickname.
type FriendRow struct {
	Friend
	Nickname string
}

// Unit is one entry of a friend list.
type Unit struct {
	FriendID string        `json:"friend_id"`
	UserID   string        `json:"user_id"`
	Nickname string        `json:"nickname"`
	Skin     skin.Equipped `json:"skin"`
}

type sendRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
}

package library

import (
	"strings"
	"time"

	"bookduck/internal/apperr"
	"bookduck/internal/bookinfo"
)

// ReadStatus is the reading progress of a book in a user's library.
type ReadStatus string

const (
	StatusNotStarted ReadStatus = "NOT_STARTED"
	StatusReading    ReadStatus = "READING"
	StatusFinished   ReadStatus = "FINISHED"
	StatusStopped    ReadStatus = "STOPPED"
)

// ParseReadStatus accepts any casing of a known status.
func ParseReadStatus(s string) (ReadStatus, error) {
	switch st := ReadStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusNotStarted, StatusReading, StatusFinished, StatusStopped:
		return st, nil
	default:
		return "", apperr.Validationf("invalid read status %q", s)
	}
}

// UserBook links a user to a catalog book.
type UserBook struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	BookInfoID string     `json:"book_info_id"`
	ReadStatus ReadStatus `json:"read_status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Entry is a library row joined with its book for listings.
type Entry struct {
	UserBook
	Title   string `json:"title"`
	Author  string `json:"author"`
	ImgPath string `json:"img_path"`
}

// AddRequest adds either an already stored book or provider data that is
// saved on the fly.
type AddRequest struct {
	BookInfoID string                `json:"book_info_id"`
	Book       *bookinfo.SaveRequest `json:"book"`
	ReadStatus string                `json:"read_status"`
}

type statusRequest struct {
	ReadStatus string `json:"read_status" validate:"required"`
}

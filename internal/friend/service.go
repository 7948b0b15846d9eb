package friend

import (
	"context"
	"strings"

	"bookduck/internal/apperr"

	"go.uber.org/zap"
)

type Service struct {
	repo  Repository
	skins SkinLookup
	log   *zap.Logger
}

func NewService(repo Repository, skins SkinLookup, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, skins: skins, log: log}
}

// SendFriendRequest creates a pending request from actorID to receiverID.
func (s *Service) SendFriendRequest(ctx context.Context, actorID, receiverID string) (Request, error) {
	receiverID = strings.TrimSpace(receiverID)
	if receiverID == "" {
		return Request{}, apperr.Validation("receiver_id is required")
	}
	if receiverID == actorID {
		return Request{}, apperr.Validation("cannot send a friend request to yourself")
	}

	ok, err := s.repo.UserExists(ctx, receiverID)
	if err != nil {
		return Request{}, err
	}
	if !ok {
		return Request{}, apperr.ErrUserNotFound
	}

	related, err := s.repo.Related(ctx, actorID, receiverID)
	if err != nil {
		return Request{}, err
	}
	if related {
		return Request{}, apperr.ErrAlreadyExists
	}

	req := Request{SenderID: actorID, ReceiverID: receiverID, Status: StatusPending}
	if err := s.repo.CreateRequest(ctx, &req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// AcceptFriendRequest lets the receiver accept a request. Accepting an
// already accepted request succeeds without creating another friendship.
func (s *Service) AcceptFriendRequest(ctx context.Context, actorID, requestID string) error {
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.ReceiverID != actorID {
		return apperr.ErrUnauthorizedRequest
	}

	accepted, err := s.repo.Accept(ctx, req)
	if err != nil {
		return err
	}
	if !accepted {
		s.log.Debug("friend request already accepted", zap.String("request_id", requestID))
		return nil
	}
	s.log.Info("friend request accepted",
		zap.String("request_id", requestID),
		zap.String("sender_id", req.SenderID),
		zap.String("receiver_id", req.ReceiverID),
	)
	return nil
}

// GetFriendList returns the friendships actorID accepted, oldest first,
// each with the friend's displayed skin.
func (s *Service) GetFriendList(ctx context.Context, actorID string) ([]Unit, error) {
	rows, err := s.repo.ListFriends(ctx, actorID)
	if err != nil {
		return nil, err
	}

	units := make([]Unit, 0, len(rows))
	for _, row := range rows {
		eq, err := s.skins.GetEquippedSkinOrDefault(ctx, row.User2ID)
		if err != nil {
			return nil, err
		}
		units = append(units, Unit{
			FriendID: row.ID,
			UserID:   row.User2ID,
			Nickname: row.Nickname,
			Skin:     eq,
		})
	}
	return units, nil
}

func (s *Service) ListSentRequests(ctx context.Context, actorID string) ([]RequestUnit, error) {
	return nonNil(s.repo.ListSent(ctx, actorID))
}

func (s *Service) ListReceivedRequests(ctx context.Context, actorID string) ([]RequestUnit, error) {
	return nonNil(s.repo.ListReceived(ctx, actorID))
}

func nonNil(units []RequestUnit, err error) ([]RequestUnit, error) {
	if err != nil {
		return nil, err
	}
	if units == nil {
		units = []RequestUnit{}
	}
	return units, nil
}

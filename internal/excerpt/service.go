package excerpt

import (
	"context"

	"bookduck/internal/apperr"
)

type Service struct {
	repo  Repository
	books BookLookup
}

func NewService(repo Repository, books BookLookup) *Service {
	return &Service{repo: repo, books: books}
}

// Create stores a new excerpt for actorID. Content and memo must be present
// but may be empty.
func (s *Service) Create(ctx context.Context, actorID string, req CreateRequest) (Excerpt, error) {
	if err := checkText(req.Content, req.Memo); err != nil {
		return Excerpt{}, err
	}
	if _, err := s.books.Get(ctx, req.BookInfoID); err != nil {
		return Excerpt{}, err
	}

	e := Excerpt{
		UserID:     actorID,
		BookInfoID: req.BookInfoID,
		Content:    *req.Content,
		Memo:       *req.Memo,
	}
	if err := s.repo.Create(ctx, &e); err != nil {
		return Excerpt{}, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, actorID, id string) (Excerpt, error) {
	return s.owned(ctx, actorID, id)
}

// ListByBook returns actorID's excerpts of one book, oldest first.
func (s *Service) ListByBook(ctx context.Context, actorID, bookInfoID string) ([]Excerpt, error) {
	if _, err := s.books.Get(ctx, bookInfoID); err != nil {
		return nil, err
	}
	list, err := s.repo.ListByBook(ctx, actorID, bookInfoID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Excerpt{}
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, actorID, id string, req UpdateRequest) (Excerpt, error) {
	if err := checkText(req.Content, req.Memo); err != nil {
		return Excerpt{}, err
	}
	if _, err := s.owned(ctx, actorID, id); err != nil {
		return Excerpt{}, err
	}
	return s.repo.Update(ctx, id, *req.Content, *req.Memo)
}

func (s *Service) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.owned(ctx, actorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) owned(ctx context.Context, actorID, id string) (Excerpt, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Excerpt{}, err
	}
	if e.UserID != actorID {
		return Excerpt{}, apperr.ErrUnauthorizedRequest
	}
	return e, nil
}

func checkText(content, memo *string) error {
	if content == nil {
		return apperr.Validation("content is required")
	}
	if memo == nil {
		return apperr.Validation("memo is required")
	}
	return nil
}

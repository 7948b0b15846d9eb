package library

import (
	"context"
	"strings"

	"bookduck/internal/apperr"
	"bookduck/internal/bookinfo"
	"bookduck/internal/validation"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Service manages users' libraries.
type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// AddBook puts a book in actorID's library. Provider data is resolved to an
// existing BookInfo by provider id and saved when missing.
func (s *Service) AddBook(ctx context.Context, actorID string, req AddRequest) (UserBook, error) {
	status := StatusNotStarted
	if req.ReadStatus != "" {
		st, err := ParseReadStatus(req.ReadStatus)
		if err != nil {
			return UserBook{}, err
		}
		status = st
	}

	book, err := s.resolveBook(ctx, req)
	if err != nil {
		return UserBook{}, err
	}

	ub := UserBook{UserID: actorID, BookInfoID: book.ID, ReadStatus: status}
	if err := s.repo.Create(ctx, &ub); err != nil {
		return UserBook{}, err
	}
	return ub, nil
}

func (s *Service) resolveBook(ctx context.Context, req AddRequest) (bookinfo.BookInfo, error) {
	if id := strings.TrimSpace(req.BookInfoID); id != "" {
		return s.catalog.Get(ctx, id)
	}
	if req.Book == nil {
		return bookinfo.BookInfo{}, apperr.Validation("book_info_id or book is required")
	}
	if errs := validation.Struct(req.Book); len(errs) > 0 {
		return bookinfo.BookInfo{}, apperr.ErrValidation.WithDetails(errs)
	}

	existing, err := s.catalog.FindByProviderID(ctx, req.Book.ProviderID)
	if err != nil {
		return bookinfo.BookInfo{}, err
	}
	if existing != nil {
		return *existing, nil
	}
	return s.catalog.SaveAPIBookInfo(ctx, *req.Book)
}

// List returns actorID's library, optionally filtered by status.
func (s *Service) List(ctx context.Context, actorID, status string, limit, offset int) ([]Entry, int, error) {
	var st ReadStatus
	if status != "" {
		parsed, err := ParseReadStatus(status)
		if err != nil {
			return nil, 0, err
		}
		st = parsed
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := s.repo.List(ctx, actorID, st, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, total, nil
}

// ChangeReadStatus overwrites the status of a library entry owned by actorID.
// Any status may follow any other.
func (s *Service) ChangeReadStatus(ctx context.Context, actorID, userBookID, status string) (UserBook, error) {
	st, err := ParseReadStatus(status)
	if err != nil {
		return UserBook{}, err
	}
	if _, err := s.owned(ctx, actorID, userBookID); err != nil {
		return UserBook{}, err
	}
	return s.repo.UpdateStatus(ctx, userBookID, st)
}

// Delete removes a library entry owned by actorID. Excerpts are kept.
func (s *Service) Delete(ctx context.Context, actorID, userBookID string) error {
	if _, err := s.owned(ctx, actorID, userBookID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, userBookID)
}

func (s *Service) owned(ctx context.Context, actorID, userBookID string) (UserBook, error) {
	ub, err := s.repo.GetByID(ctx, userBookID)
	if err != nil {
		return UserBook{}, err
	}
	if ub.UserID != actorID {
		return UserBook{}, apperr.ErrUnauthorizedRequest
	}
	return ub, nil
}

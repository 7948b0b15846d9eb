package bookinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookduck/internal/apperr"

	"go.uber.org/zap"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 40
)

// Service provides catalog operations backed by the provider and storage.
type Service struct {
	repo           Repository
	provider       Provider
	defaultGenreID int64
	log            *zap.Logger
}

// NewService creates a new catalog service. Saved books are assigned
// defaultGenreID.
func NewService(repo Repository, provider Provider, defaultGenreID int64, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, provider: provider, defaultGenreID: defaultGenreID, log: log}
}

// SearchBookList searches the provider by keyword. Page is 1-based.
func (s *Service) SearchBookList(ctx context.Context, keyword string, page, size int) ([]ListItem, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperr.Validation("keyword is required")
	}
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	payload, err := s.provider.SearchList(ctx, keyword, page, size)
	if err != nil {
		return nil, err
	}
	return ParseList(payload)
}

// GetAPIBookBasic fetches and parses the provider detail of one volume.
func (s *Service) GetAPIBookBasic(ctx context.Context, providerID string) (Detail, error) {
	if strings.TrimSpace(providerID) == "" {
		return Detail{}, apperr.Validation("provider id is required")
	}
	payload, err := s.provider.SearchDetail(ctx, providerID)
	if err != nil {
		return Detail{}, err
	}
	return ParseDetail(payload)
}

// FindByProviderID returns the stored book for providerID, or nil.
func (s *Service) FindByProviderID(ctx context.Context, providerID string) (*BookInfo, error) {
	return s.repo.FindByProviderID(ctx, providerID)
}

// Get returns a stored book by id.
func (s *Service) Get(ctx context.Context, id string) (BookInfo, error) {
	return s.repo.GetByID(ctx, id)
}

// SaveAPIBookInfo persists provider data as a BookInfo. Only the first
// author and category are kept. When the provider id is already stored the
// existing row is returned unchanged.
func (s *Service) SaveAPIBookInfo(ctx context.Context, req SaveRequest) (BookInfo, error) {
	if strings.TrimSpace(req.ProviderID) == "" {
		return BookInfo{}, apperr.Validation("provider id is required")
	}
	if req.PageCount < 0 {
		return BookInfo{}, apperr.Validation("page count must not be negative")
	}

	genre, err := s.repo.GetGenre(ctx, s.defaultGenreID)
	if err != nil {
		return BookInfo{}, err
	}

	b := BookInfo{
		ProviderID:  req.ProviderID,
		Title:       req.Title,
		Author:      first(req.Authors),
		Publisher:   req.Publisher,
		PublishDate: req.PublishDate,
		Description: req.Description,
		Category:    first(req.Category),
		PageCount:   req.PageCount,
		ImgPath:     req.ImgPath,
		Language:    req.Language,
		GenreID:     genre.ID,
	}

	created, err := s.repo.Insert(ctx, &b)
	if err != nil {
		return BookInfo{}, fmt.Errorf("insert book info: %w", err)
	}
	if created {
		return b, nil
	}

	s.log.Debug("book info already stored", zap.String("provider_id", req.ProviderID))
	existing, err := s.repo.FindByProviderID(ctx, req.ProviderID)
	if err != nil {
		return BookInfo{}, err
	}
	if existing == nil {
		return BookInfo{}, errors.New("book info vanished after conflicting insert")
	}
	return *existing, nil
}

// Delete removes a book together with actorID's library entries and
// excerpts of it. Books other users still hold are left alone.
func (s *Service) Delete(ctx context.Context, actorID, id string) error {
	return s.repo.Delete(ctx, id, actorID)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

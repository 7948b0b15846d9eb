package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"bookduck/internal/apperr"
	"bookduck/internal/auth"
)

var errInvalidCredentials = &apperr.Error{Code: apperr.CodeUnauthenticated, Message: "invalid email or password"}

type Service struct {
	repo      Repository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewService(repo Repository, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *Service) Register(ctx context.Context, email, nickname, password string) (User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	u := &User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Nickname:     strings.TrimSpace(nickname),
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return *u, nil
}

// Login checks the credentials and issues an access token whose subject is
// the user id.
func (s *Service) Login(ctx context.Context, email, password string) (Token, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, apperr.ErrUserNotFound) {
		return Token{}, errInvalidCredentials
	}
	if err != nil {
		return Token{}, err
	}
	if !auth.PasswordMatches(u.PasswordHash, password) {
		return Token{}, errInvalidCredentials
	}

	token, _, err := auth.GenerateToken(s.jwtSecret, u.ID, s.tokenTTL)
	if err != nil {
		return Token{}, err
	}
	return Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("load request: %w", ErrFriendRequestNotFound)

	assert.True(t, errors.Is(wrapped, ErrFriendRequestNotFound))
	assert.False(t, errors.Is(wrapped, ErrBookInfoNotFound))

	custom := Validation("content is required")
	assert.True(t, errors.Is(custom, ErrValidation))
}

func TestError_WithCauseKeepsChain(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := MetadataParse(cause)

	assert.True(t, errors.Is(err, ErrMetadataParse))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
}

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeBookInfoNotFound, http.StatusNotFound},
		{CodeGenreNotFound, http.StatusNotFound},
		{CodeFriendRequestNotFound, http.StatusNotFound},
		{CodeUnauthorizedRequest, http.StatusForbidden},
		{CodeUnauthenticated, http.StatusUnauthorized},
		{CodeMetadataParse, http.StatusBadGateway},
		{CodeValidation, http.StatusBadRequest},
		{CodeAlreadyExists, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeUserNotFound, CodeOf(fmt.Errorf("x: %w", ErrUserNotFound)))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

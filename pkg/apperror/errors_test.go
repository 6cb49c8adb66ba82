package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := New("WGR_002", "Wager not found", http.StatusNotFound)
	assert.Equal(t, "[WGR_002] Wager not found", err.Error())

	wrapped := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, errors.New("pool closed"))
	assert.Contains(t, wrapped.Error(), "pool closed")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("row scan failed")
	err := InternalError(fmt.Errorf("fetch wager: %w", inner))
	assert.True(t, errors.Is(err, inner))
}

func TestHasCode(t *testing.T) {
	err := ErrAlreadyTerminal()
	assert.True(t, HasCode(err, CodeAlreadyTerminal))
	assert.False(t, HasCode(err, CodeWagerNotFound))

	// Works through wrapping.
	wrapped := fmt.Errorf("settle: %w", err)
	assert.True(t, HasCode(wrapped, CodeAlreadyTerminal))

	assert.False(t, HasCode(errors.New("plain"), CodeAlreadyTerminal))
	assert.False(t, HasCode(nil, CodeAlreadyTerminal))
}

func TestErrorConstructors(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrInsufficientFunds("alice"), CodeInsufficientFunds, http.StatusPaymentRequired},
		{ErrInvalidAmount(), CodeInvalidAmount, http.StatusBadRequest},
		{ErrUserNotFound("bob"), CodeUserNotFound, http.StatusNotFound},
		{ErrDuplicateSource(), CodeDuplicateSource, http.StatusConflict},
		{ErrWagerNotFound(), CodeWagerNotFound, http.StatusNotFound},
		{ErrAmbiguousMatch(), CodeAmbiguousMatch, http.StatusConflict},
		{ErrAlreadyTerminal(), CodeAlreadyTerminal, http.StatusConflict},
		{ErrInvalidCredentials(), CodeInvalidCredentials, http.StatusUnauthorized},
		{ErrInvalidToken(), CodeInvalidToken, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		require.NotNil(t, tc.err)
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestErrInsufficientFunds_MentionsHandle(t *testing.T) {
	err := ErrInsufficientFunds("player1")
	assert.Contains(t, err.Message, "player1")
}

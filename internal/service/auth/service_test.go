package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/voicescribe-backend/internal/domain"
)

type tokenValidatorMock struct {
	validateFunc func(token string) (uuid.UUID, error)
	calls        []string
}

func (m *tokenValidatorMock) ValidateToken(token string) (uuid.UUID, error) {
	m.calls = append(m.calls, token)
	return m.validateFunc(token)
}

func newTestService(tokens tokenValidator) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, tokens)
}

func TestService_VerifyToken(t *testing.T) {
	userID := uuid.New()

	validator := &tokenValidatorMock{
		validateFunc: func(token string) (uuid.UUID, error) {
			return userID, nil
		},
	}
	svc := newTestService(validator)

	got, err := svc.VerifyToken(context.Background(), "valid-token")

	require.NoError(t, err)
	assert.Equal(t, userID, got)
	require.Len(t, validator.calls, 1)
	assert.Equal(t, "valid-token", validator.calls[0])
}

func TestService_VerifyToken_Rejected(t *testing.T) {
	validator := &tokenValidatorMock{
		validateFunc: func(token string) (uuid.UUID, error) {
			return uuid.Nil, errors.New("token is expired")
		},
	}
	svc := newTestService(validator)

	got, err := svc.VerifyToken(context.Background(), "expired-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, uuid.Nil, got)
}

func TestService_VerifyToken_ReasonNotExposed(t *testing.T) {
	validator := &tokenValidatorMock{
		validateFunc: func(token string) (uuid.UUID, error) {
			return uuid.Nil, errors.New("signature is invalid: secret mismatch")
		},
	}
	svc := newTestService(validator)

	_, err := svc.VerifyToken(context.Background(), "forged-token")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret mismatch")
}

// Package auth implements bearer-token verification against the identity
// provider. Every pipeline request passes through VerifyToken before any
// other work happens.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/voicescribe-backend/internal/domain"
)

// tokenValidator defines the token manager interface needed by the service.
type tokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// Service verifies bearer credentials and yields opaque user identities.
type Service struct {
	log    *slog.Logger
	tokens tokenValidator
}

// NewService creates the auth service.
func NewService(logger *slog.Logger, tokens tokenValidator) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		tokens: tokens,
	}
}

// VerifyToken validates a bearer token and returns the user ID it carries.
// Any rejection maps to domain.ErrUnauthorized; the reason is logged but
// never exposed to the caller.
func (s *Service) VerifyToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.tokens.ValidateToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("verify token: %w", domain.ErrUnauthorized)
	}
	return userID, nil
}

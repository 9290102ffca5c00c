// Package conversion orchestrates the request-to-artifact pipeline:
// resolve input, synthesize speech, publish the artifact, record history.
// Steps run strictly in sequence and the first failure is terminal for
// the request; nothing is retried.
package conversion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/voicescribe-backend/internal/domain"
	"github.com/heartmarshall/voicescribe-backend/pkg/ctxutil"
)

// synthesizer defines the speech provider interface needed by the service.
type synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// artifactStore defines the object storage interface needed by the service.
type artifactStore interface {
	Publish(ctx context.Context, audio []byte, contentType string) (*domain.StoredAudio, error)
}

// conversionRepo defines the history repository interface needed by the service.
type conversionRepo interface {
	Create(ctx context.Context, c *domain.Conversion) (*domain.Conversion, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversion, error)
}

// Service implements text-to-speech conversion and history retrieval.
type Service struct {
	log   *slog.Logger
	tts   synthesizer
	store artifactStore
	repo  conversionRepo
}

// NewService creates a new conversion service instance.
func NewService(
	logger *slog.Logger,
	tts synthesizer,
	store artifactStore,
	repo conversionRepo,
) *Service {
	return &Service{
		log:   logger.With("service", "conversion"),
		tts:   tts,
		store: store,
		repo:  repo,
	}
}

// Convert runs the pipeline for one request. The caller's identity must
// already be in the context (set by the auth middleware). If the history
// insert fails after a successful publish, the stored artifact is left
// behind with no row; the caller sees a plain failure and the window is
// not reconciled.
func (s *Service) Convert(ctx context.Context, in ConvertInput) (*domain.Conversion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("convert: %w", domain.ErrUnauthorized)
	}

	text, err := resolveText(in)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	audio, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	stored, err := s.store.Publish(ctx, audio, domain.AudioMIMEType)
	if err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	conv, err := s.repo.Create(ctx, &domain.Conversion{
		UserID:   userID,
		Text:     text,
		AudioURL: stored.PublicURL,
	})
	if err != nil {
		// The artifact is already durable; only the history row is missing.
		s.log.ErrorContext(ctx, "history insert failed after publish",
			slog.String("user_id", userID.String()),
			slog.String("audio_url", stored.PublicURL),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("convert: %w", err)
	}

	s.log.InfoContext(ctx, "conversion completed",
		slog.String("user_id", userID.String()),
		slog.String("conversion_id", conv.ID.String()),
		slog.Int("text_len", len(text)),
	)

	return conv, nil
}

// History returns the caller's conversions, newest first.
func (s *Service) History(ctx context.Context) ([]domain.Conversion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("history: %w", domain.ErrUnauthorized)
	}

	conversions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	return conversions, nil
}

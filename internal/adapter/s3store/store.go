// Package s3store publishes audio artifacts to S3-compatible object
// storage and derives their public URLs.
package s3store

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/heartmarshall/voicescribe-backend/internal/config"
	"github.com/heartmarshall/voicescribe-backend/internal/domain"
)

// keyPrefix groups all synthesized artifacts under one bucket folder.
const keyPrefix = "ttsaudio"

// objectPutter is the slice of the S3 client the store uses.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store writes artifacts to a single bucket and composes public URLs from
// the configured public base address. The provider never reports the URL;
// it must match the provider's public addressing scheme exactly.
type Store struct {
	client        objectPutter
	bucket        string
	publicBaseURL string
	putTimeout    time.Duration
	log           *slog.Logger
}

// New creates a Store backed by an aws-sdk-go-v2 S3 client pointed at the
// configured endpoint (AWS or any S3-compatible provider such as MinIO).
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("s3store: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		putTimeout:    cfg.PutTimeout,
		log:           logger.With("adapter", "s3store"),
	}, nil
}

// Publish uploads audio bytes under a fresh collision-resistant key and
// returns the stored reference. Failure wraps domain.ErrUpload and is
// terminal for the request; a partially uploaded object is never reused.
func (s *Store) Publish(ctx context.Context, audio []byte, contentType string) (*domain.StoredAudio, error) {
	key := newObjectKey()

	ctx, cancel := context.WithTimeout(ctx, s.putTimeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(audio),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "put object failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: put %s: %w", domain.ErrUpload, key, err)
	}

	ref := &domain.StoredAudio{
		Key:       key,
		PublicURL: s.PublicURL(key),
	}

	s.log.DebugContext(ctx, "artifact published",
		slog.String("key", key),
		slog.Int("size", len(audio)),
	)

	return ref, nil
}

// PublicURL derives the publicly resolvable address of a stored object.
func (s *Store) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key)
}

// newObjectKey returns a key unique across concurrent requests. A plain
// timestamp collides when two requests land in the same instant, so a
// random UUID suffix is appended.
func newObjectKey() string {
	return fmt.Sprintf("%s/%d-%s.mp3", keyPrefix, time.Now().UnixNano(), uuid.New())
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// AudioMIMEType is the content type of every synthesized artifact.
const AudioMIMEType = "audio/mpeg"

// MaxTextLength is the upper bound (in characters) for text accepted
// for synthesis. Longer input is rejected before the provider is called.
const MaxTextLength = 2000

// Conversion is one completed text-to-speech conversion. A row exists only
// when both the artifact upload and the history insert succeeded; it is
// never mutated afterwards.
type Conversion struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Text      string
	AudioURL  string
	CreatedAt time.Time
}

// StoredAudio references an artifact published to object storage.
// The public URL is derived from the storage key, not returned by the
// storage provider.
type StoredAudio struct {
	Key       string
	PublicURL string
}

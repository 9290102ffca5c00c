// Package deepgram wraps the Deepgram speech synthesis API.
package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/voicescribe-backend/internal/config"
	"github.com/heartmarshall/voicescribe-backend/internal/domain"
)

const speakPath = "/v1/speak"

// maxAudioSize bounds the response body read (32 MiB is far above any
// synthesized clip for 2000 characters of input).
const maxAudioSize = 32 << 20

// Client calls the Deepgram text-to-speech endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from SpeechConfig. The base URL is
// configurable so tests can point it at a local server.
func NewClient(cfg config.SpeechConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "deepgram"),
	}
}

// speakRequest is the JSON body of a synthesis call.
type speakRequest struct {
	Text string `json:"text"`
}

// Synthesize sends text to the provider and returns the raw audio bytes
// (audio/mpeg). Every failure (non-2xx status, network error, timeout)
// wraps domain.ErrSynthesis; the call is never retried.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(speakRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("deepgram: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+speakPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("deepgram: create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "speak request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: request: %w", domain.ErrSynthesis, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.ErrorContext(ctx, "speak request rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(errBody)),
		)
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrSynthesis, resp.StatusCode)
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrSynthesis, err)
	}

	c.log.DebugContext(ctx, "speech synthesized",
		slog.Int("text_len", len(text)),
		slog.Int("audio_bytes", len(audio)),
	)

	return audio, nil
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/heartmarshall/voicescribe-backend/internal/domain"
	"github.com/heartmarshall/voicescribe-backend/internal/service/conversion"
)

// Response messages match the public API contract.
const (
	msgConversionOK     = "TTS conversion successful"
	msgConversionFailed = "TTS conversion failed."
	msgInvalidInput     = "Invalid input or text exceeds 2000 characters."
	msgHistoryFailed    = "Failed to fetch TTS history."
)

// maxUploadSize bounds multipart parsing. Text input is capped at 2000
// characters anyway; anything bigger is rejected as invalid input.
const maxUploadSize = 1 << 20

// conversionService defines the minimal interface needed by TTSHandler.
type conversionService interface {
	Convert(ctx context.Context, in conversion.ConvertInput) (*domain.Conversion, error)
	History(ctx context.Context) ([]domain.Conversion, error)
}

// TTSHandler serves the text-to-speech REST endpoints.
type TTSHandler struct {
	svc conversionService
	log *slog.Logger
}

// NewTTSHandler creates a TTSHandler.
func NewTTSHandler(svc conversionService, logger *slog.Logger) *TTSHandler {
	return &TTSHandler{svc: svc, log: logger.With("handler", "tts")}
}

type convertJSONRequest struct {
	Text string `json:"text"`
}

type convertResponse struct {
	Message  string `json:"message"`
	AudioURL string `json:"audioUrl"`
}

type historyItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AudioURL  string    `json:"audioUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Convert handles POST /api/tts/convert. The body is either JSON with a
// "text" field or multipart/form-data with a "text" field and/or an
// uploaded "file"; file content supersedes inline text.
func (h *TTSHandler) Convert(w http.ResponseWriter, r *http.Request) {
	in, err := parseConvertRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	conv, err := h.svc.Convert(r.Context(), in)
	if err != nil {
		h.handleConvertError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Message:  msgConversionOK,
		AudioURL: conv.AudioURL,
	})
}

// History handles GET /api/tts/history.
func (h *TTSHandler) History(w http.ResponseWriter, r *http.Request) {
	conversions, err := h.svc.History(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "history fetch failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgHistoryFailed)
		return
	}

	items := make([]historyItem, len(conversions))
	for i, c := range conversions {
		items[i] = historyItem{
			ID:        c.ID.String(),
			Text:      c.Text,
			AudioURL:  c.AudioURL,
			CreatedAt: c.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *TTSHandler) handleConvertError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, msgInvalidInput)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
	default:
		// Synthesis, upload, and record failures all surface the same way;
		// details stay in the logs.
		h.log.ErrorContext(r.Context(), "conversion failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgConversionFailed)
	}
}

// parseConvertRequest normalizes the two accepted body shapes into a
// ConvertInput. Uploaded file content is read fully into memory; no
// temporary file is staged, so there is nothing to clean up on any path.
func parseConvertRequest(r *http.Request) (conversion.ConvertInput, error) {
	var in conversion.ConvertInput

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return in, err
		}
		in.Text = r.FormValue("text")

		file, _, err := r.FormFile("file")
		switch {
		case err == nil:
			defer file.Close()
			upload, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
			if err != nil {
				return in, err
			}
			in.Upload = upload
		case errors.Is(err, http.ErrMissingFile):
			// Inline text only.
		default:
			return in, err
		}

		return in, nil
	}

	var body convertJSONRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadSize)).Decode(&body); err != nil {
		return in, err
	}
	in.Text = body.Text

	return in, nil
}

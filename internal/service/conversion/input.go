package conversion

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/voicescribe-backend/internal/domain"
)

// ConvertInput carries the two possible text sources of one request.
// Upload is the raw content of an uploaded file; Text is the inline field.
type ConvertInput struct {
	Text   string
	Upload []byte
}

// resolveText picks the effective text and validates it. Uploaded file
// content supersedes inline text when both are present. The text must
// be non-empty and at most domain.MaxTextLength characters; violations
// return domain.ErrValidation before the synthesis provider is touched.
func resolveText(in ConvertInput) (string, error) {
	text := in.Text
	if len(in.Upload) > 0 {
		text = string(in.Upload)
	}

	if text == "" {
		return "", fmt.Errorf("%w: text is empty", domain.ErrValidation)
	}
	if n := utf8.RuneCountInString(text); n > domain.MaxTextLength {
		return "", fmt.Errorf("%w: text is %d characters, limit is %d", domain.ErrValidation, n, domain.MaxTextLength)
	}

	return text, nil
}

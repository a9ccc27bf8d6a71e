package transform

import (
	"strings"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

// TransformInput holds the parameters of one transformation request.
// Text is kept as submitted; only the emptiness check trims it.
type TransformInput struct {
	Text string
	Tone domain.Tone
}

// Validate checks all fields and collects all errors.
func (i TransformInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: domain.MsgEmptyText})
	}
	if !i.Tone.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tone", Message: "unknown tone"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Result is a successful transformation.
type Result struct {
	OriginalText    string
	TransformedText string
	Tone            domain.Tone
}

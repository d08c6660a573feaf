package analysis

import (
	"strings"

	"github.com/ndevr/contentseer/internal/domain"
)

// AnalyzeInput holds the parameters for analyzing a published post.
type AnalyzeInput struct {
	PostID    int64
	PersonaID int64
	Title     string
	Content   string
}

// Validate checks all fields and collects all errors.
func (i AnalyzeInput) Validate() error {
	var errs []domain.FieldError
	if i.PostID <= 0 {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.PersonaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "persona_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

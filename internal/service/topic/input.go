package topic

import "github.com/ndevr/contentseer/internal/domain"

// ImportInput holds the parameters for bulk topic import.
type ImportInput struct {
	PersonaID int64
	Topics    []string
	Source    domain.Source
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError
	if i.PersonaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "persona_id", Message: "required"})
	}
	if len(i.Topics) == 0 {
		errs = append(errs, domain.FieldError{Field: "topics", Message: "required"})
	}
	if !i.Source.Valid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "unknown source"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RequestInput holds the parameters for requesting fresh topics.
type RequestInput struct {
	PersonaID int64
}

// Validate checks all fields.
func (i RequestInput) Validate() error {
	if i.PersonaID <= 0 {
		return domain.NewValidationError("persona_id", "required")
	}
	return nil
}

// ListInput holds the parameters for listing topics.
type ListInput struct {
	PersonaID   int64
	IncludeUsed bool
}

// Validate checks all fields.
func (i ListInput) Validate() error {
	if i.PersonaID <= 0 {
		return domain.NewValidationError("persona_id", "required")
	}
	return nil
}

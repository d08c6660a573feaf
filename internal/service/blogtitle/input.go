package blogtitle

import "github.com/ndevr/contentseer/internal/domain"

// ImportInput holds the parameters for bulk blog title import.
type ImportInput struct {
	TopicID int64
	Titles  []string
	Source  domain.Source
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError
	if i.TopicID <= 0 {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if len(i.Titles) == 0 {
		errs = append(errs, domain.FieldError{Field: "blog_titles", Message: "required"})
	}
	if !i.Source.Valid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "unknown source"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GenerateInput holds the parameters for generating titles for a topic.
type GenerateInput struct {
	TopicID int64
}

// Validate checks all fields.
func (i GenerateInput) Validate() error {
	if i.TopicID <= 0 {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}

// ListInput holds the parameters for listing blog titles.
type ListInput struct {
	TopicID     int64
	IncludeUsed bool
}

// Validate checks all fields.
func (i ListInput) Validate() error {
	if i.TopicID <= 0 {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}

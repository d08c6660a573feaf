package generation

import (
	"strings"

	"github.com/ndevr/contentseer/internal/domain"
)

// GenerateInput holds the parameters for a content generation request.
// TopicID and BlogTitleID are optional: when present, the corresponding row
// is marked used by id; otherwise the texts are matched against the oldest
// active unused rows. BlogTitle is optional: a post can be generated from a
// topic alone and the downstream service picks its own title.
type GenerateInput struct {
	PersonaID   int64
	Topic       string
	BlogTitle   string
	TopicID     *int64
	BlogTitleID *int64
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError
	if i.PersonaID <= 0 {
		errs = append(errs, domain.FieldError{Field: "persona_id", Message: "required"})
	}
	if strings.TrimSpace(i.Topic) == "" {
		errs = append(errs, domain.FieldError{Field: "topic", Message: "required"})
	}
	if i.TopicID != nil && *i.TopicID <= 0 {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "must be positive"})
	}
	if i.BlogTitleID != nil && *i.BlogTitleID <= 0 {
		errs = append(errs, domain.FieldError{Field: "blog_title_id", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

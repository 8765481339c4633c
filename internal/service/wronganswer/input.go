package wronganswer

import (
	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
)

// ListInput holds the filter for listing wrong-answer entries.
type ListInput struct {
	MovieID  *uuid.UUID
	Level    *domain.Level
	Mastered *bool
	Limit    int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Level != nil && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be BEGINNER, INTERMEDIATE, or ADVANCED"})
	}
	if i.Limit < 0 || i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

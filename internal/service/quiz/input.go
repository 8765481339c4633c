package quiz

import (
	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
)

// GenerateInput holds the parameters for generating a quiz.
type GenerateInput struct {
	MovieID *uuid.UUID
	Level   *domain.Level
	Count   int
	// AllowedTypes restricts the question shapes; empty means all three.
	AllowedTypes []domain.QuestionType
}

// Validate checks all fields and collects all errors.
func (i *GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.Count < 0 {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be non-negative"})
	}
	if i.Level != nil && !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be BEGINNER, INTERMEDIATE, or ADVANCED"})
	}
	for _, qt := range i.AllowedTypes {
		if !qt.IsValid() {
			errs = append(errs, domain.FieldError{Field: "allowed_types", Message: "must be WORD_TO_MEANING, MEANING_TO_WORD, or CLOZE_TO_MEANING"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitAnswerInput holds one answered question within a session.
type SubmitAnswerInput struct {
	SessionID   uuid.UUID
	Question    domain.Question
	UserAnswer  string
	TimeSpentMs *int64
}

// Validate checks all fields and collects all errors.
func (i *SubmitAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.Question.VocabularyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question.vocabulary_id", Message: "required"})
	}
	if !i.Question.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "question.type", Message: "must be WORD_TO_MEANING, MEANING_TO_WORD, or CLOZE_TO_MEANING"})
	}
	if i.Question.CorrectAnswer == "" {
		errs = append(errs, domain.FieldError{Field: "question.correct_answer", Message: "required"})
	}
	if i.UserAnswer == "" {
		errs = append(errs, domain.FieldError{Field: "user_answer", Message: "required"})
	}
	if i.TimeSpentMs != nil && *i.TimeSpentMs < 0 {
		errs = append(errs, domain.FieldError{Field: "time_spent_ms", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// FinishSessionInput closes a session.
type FinishSessionInput struct {
	SessionID   uuid.UUID
	TimeSpentMs *int64
	// Abandoned marks a session the user quit mid-way.
	Abandoned bool
}

// Validate checks all fields and collects all errors.
func (i *FinishSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}
	if i.TimeSpentMs != nil && *i.TimeSpentMs < 0 {
		errs = append(errs, domain.FieldError{Field: "time_spent_ms", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

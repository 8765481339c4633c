package study

import (
	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
)

// RecordAnswerInput holds the parameters for recording one answered question.
type RecordAnswerInput struct {
	VocabularyID    uuid.UUID
	Correct         bool
	UserAnswer      string
	CorrectAnswer   string
	QuestionType    domain.QuestionType
	QuestionContext *string
}

// Validate checks all fields and collects all errors.
func (i *RecordAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.VocabularyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vocabulary_id", Message: "required"})
	}
	if !i.QuestionType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "question_type", Message: "must be WORD_TO_MEANING, MEANING_TO_WORD, or CLOZE_TO_MEANING"})
	}
	if !i.Correct && i.UserAnswer == "" {
		errs = append(errs, domain.FieldError{Field: "user_answer", Message: "required for an incorrect answer"})
	}
	if !i.Correct && i.CorrectAnswer == "" {
		errs = append(errs, domain.FieldError{Field: "correct_answer", Message: "required for an incorrect answer"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// OptionCount is the number of answer options per question (one correct
// answer plus three distractors).
const OptionCount = 4

// Question is a single generated multiple-choice question. Questions are
// transient: they live only for the duration of one quiz session and are
// never persisted as such.
type Question struct {
	VocabularyID  uuid.UUID
	Type          QuestionType
	Text          string
	Options       []string
	CorrectAnswer string
	Word          string
	Level         Level

	// Hint and Explanation are filled only in practice mode.
	Hint        *string
	Explanation *string
}

// QuizSession is a persisted quiz run. Answers are written durably as they
// happen; abandoning a session keeps the partial progress.
type QuizSession struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	MovieID        *uuid.UUID
	TotalQuestions int
	CorrectAnswers int
	TimeSpentMs    *int64
	Status         SessionStatus
	StartedAt      time.Time
	CompletedAt    *time.Time
}

// QuizAnswer is one durably recorded answer within a session.
type QuizAnswer struct {
	ID            uuid.UUID
	SessionID     uuid.UUID
	VocabularyID  uuid.UUID
	QuestionType  QuestionType
	QuestionText  string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	TimeSpentMs   *int64
	AnsweredAt    time.Time
}

// QuestionResult is the per-question outcome of scoring a quiz.
type QuestionResult struct {
	Index         int
	VocabularyID  uuid.UUID
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// QuizScore is the pure summary of one scored quiz.
type QuizScore struct {
	Total      int
	Correct    int
	Incorrect  int
	Percentage int
	Results    []QuestionResult
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// WrongAnswerEntry is one row of a user's wrong-answer book. At most one
// live (unmastered) entry exists per (UserID, VocabularyID); marking an entry
// mastered frees the key, so a later relapse starts a fresh entry with its
// own counter.
type WrongAnswerEntry struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	VocabularyID    uuid.UUID
	WrongAnswer     string
	CorrectAnswer   string
	QuestionType    QuestionType
	QuestionContext *string
	TimesWrong      int
	Mastered        bool
	CreatedAt       time.Time
	LastAttemptedAt time.Time
}

// WrongAnswerFilter contains filtering parameters for wrong-answer listings.
// Nil pointer fields mean "no filter"; Mastered is tri-state for the same
// reason (nil lists both live and mastered entries).
type WrongAnswerFilter struct {
	MovieID  *uuid.UUID
	Level    *Level
	Mastered *bool
	Limit    int
}

// WeakSpot is one line of the weakness analysis: a vocabulary item with
// aggregated miss counts across its unmastered entries.
type WeakSpot struct {
	VocabularyID  uuid.UUID
	Word          string
	Definition    string
	Level         Level
	MovieID       *uuid.UUID
	TotalWrong    int
	MaxTimesWrong int
}

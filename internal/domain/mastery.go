package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinBox and MaxBox bound the Leitner box range. Box 0 holds new and
// freshly-missed items; box 5 is the long-term steady state.
const (
	MinBox = 0
	MaxBox = 5
)

// MasteryRecord tracks one user's history with one vocabulary item.
// There is at most one record per (UserID, VocabularyID); it is created on
// the first recorded answer and never deleted.
type MasteryRecord struct {
	UserID         uuid.UUID
	VocabularyID   uuid.UUID
	CorrectCount   int
	IncorrectCount int
	// MasteryLevel is derived from the counters and is never set directly.
	MasteryLevel    float64
	SRSBox          int
	SRSIntervalDays int
	NextReviewDate  *time.Time
	LastReviewedAt  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsDue reports whether the record is due for review on the given day.
// Comparison is date-only; records that were never scheduled are always due.
func (m *MasteryRecord) IsDue(now time.Time, loc *time.Location) bool {
	if m.NextReviewDate == nil {
		return true
	}
	review := m.NextReviewDate.In(loc)
	today := now.In(loc)
	ry, rm, rd := review.Date()
	ty, tm, td := today.Date()
	reviewDay := time.Date(ry, rm, rd, 0, 0, 0, 0, loc)
	currentDay := time.Date(ty, tm, td, 0, 0, 0, 0, loc)
	return !reviewDay.After(currentDay)
}

// MasteryUpdateParams holds the counter fields to upsert after an answer.
type MasteryUpdateParams struct {
	CorrectCount   int
	IncorrectCount int
	MasteryLevel   float64
	LastReviewedAt *time.Time
}

// ScheduleUpdateParams holds the Leitner fields to upsert after an answer.
type ScheduleUpdateParams struct {
	SRSBox          int
	SRSIntervalDays int
	NextReviewDate  *time.Time
}

// BoxCount holds a Leitner box and the number of records currently in it.
type BoxCount struct {
	Box   int
	Count int
}

// DueReview is a mastery record joined with its vocabulary item, as returned
// by the due-review query.
type DueReview struct {
	Record     MasteryRecord
	Vocabulary Vocabulary
}

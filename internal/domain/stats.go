package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearningStreak tracks consecutive study days for one user.
type LearningStreak struct {
	UserID         uuid.UUID
	CurrentStreak  int
	LongestStreak  int
	LastStudyDate  *time.Time
	TotalStudyDays int
	UpdatedAt      time.Time
}

// Dashboard holds aggregated learning statistics for one user.
type Dashboard struct {
	TotalVocabulary int
	MasteredCount   int
	DueCount        int
	NeverStudied    int
	BoxCounts       []BoxCount
	TotalQuizzes    int
	AverageScore    *float64
	CurrentStreak   int
}

// Package streak implements the learning-streak repository using PostgreSQL.
package streak

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/cinevocab/backend/internal/adapter/postgres"
	"github.com/cinevocab/backend/internal/domain"
)

// Repo stores one streak row per user.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new streak repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `user_id, current_streak, longest_streak, last_study_date, total_study_days, updated_at`

const getSQL = `
SELECT ` + columns + `
FROM learning_streaks
WHERE user_id = $1`

const upsertSQL = `
INSERT INTO learning_streaks (
	user_id, current_streak, longest_streak, last_study_date, total_study_days
) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE SET
	current_streak   = EXCLUDED.current_streak,
	longest_streak   = EXCLUDED.longest_streak,
	last_study_date  = EXCLUDED.last_study_date,
	total_study_days = EXCLUDED.total_study_days,
	updated_at       = now()
RETURNING ` + columns

// Get returns the user's streak. Returns domain.ErrNotFound if the user has
// never studied.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.LearningStreak, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.LearningStreak
	err := querier.QueryRow(ctx, getSQL, userID).Scan(
		&s.UserID,
		&s.CurrentStreak,
		&s.LongestStreak,
		&s.LastStudyDate,
		&s.TotalStudyDays,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "learning streak", "user="+userID.String())
	}
	return &s, nil
}

// Upsert writes the streak state, creating the row on first study.
func (r *Repo) Upsert(ctx context.Context, s domain.LearningStreak) (*domain.LearningStreak, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.LearningStreak
	err := querier.QueryRow(ctx, upsertSQL,
		s.UserID,
		s.CurrentStreak,
		s.LongestStreak,
		s.LastStudyDate,
		s.TotalStudyDays,
	).Scan(
		&out.UserID,
		&out.CurrentStreak,
		&out.LongestStreak,
		&out.LastStudyDate,
		&out.TotalStudyDays,
		&out.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "learning streak", "user="+s.UserID.String())
	}
	return &out, nil
}

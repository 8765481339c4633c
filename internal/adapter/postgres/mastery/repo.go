// Package mastery implements the per-user mastery and review-schedule
// repository using PostgreSQL.
package mastery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/cinevocab/backend/internal/adapter/postgres"
	"github.com/cinevocab/backend/internal/domain"
)

const columns = `user_id, vocabulary_id, correct_count, incorrect_count, mastery_level,
	srs_box, srs_interval_days, next_review_date, last_reviewed_at, created_at, updated_at`

// Repo stores one row per (user, vocabulary) pair. Rows are created lazily
// on the first recorded answer.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mastery repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT ` + columns + `
FROM vocabulary_mastery
WHERE user_id = $1 AND vocabulary_id = $2`

const upsertAnswerSQL = `
INSERT INTO vocabulary_mastery (
	user_id, vocabulary_id, correct_count, incorrect_count, mastery_level, last_reviewed_at
) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, vocabulary_id) DO UPDATE SET
	correct_count    = EXCLUDED.correct_count,
	incorrect_count  = EXCLUDED.incorrect_count,
	mastery_level    = EXCLUDED.mastery_level,
	last_reviewed_at = EXCLUDED.last_reviewed_at,
	updated_at       = now()
RETURNING ` + columns

const upsertScheduleSQL = `
INSERT INTO vocabulary_mastery (
	user_id, vocabulary_id, srs_box, srs_interval_days, next_review_date
) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, vocabulary_id) DO UPDATE SET
	srs_box           = EXCLUDED.srs_box,
	srs_interval_days = EXCLUDED.srs_interval_days,
	next_review_date  = EXCLUDED.next_review_date,
	updated_at        = now()
RETURNING ` + columns

const listDueSQL = `
SELECT ` + columns + `
FROM vocabulary_mastery
WHERE user_id = $1
  AND (next_review_date IS NULL OR next_review_date::date <= $2::date)
ORDER BY next_review_date ASC NULLS FIRST, vocabulary_id ASC`

const listByUserSQL = `
SELECT ` + columns + `
FROM vocabulary_mastery
WHERE user_id = $1
ORDER BY vocabulary_id ASC`

const countByBoxSQL = `
SELECT srs_box, count(*)
FROM vocabulary_mastery
WHERE user_id = $1
GROUP BY srs_box
ORDER BY srs_box ASC`

const countMasteredSQL = `
SELECT count(*)
FROM vocabulary_mastery
WHERE user_id = $1 AND mastery_level >= $2`

const countStudiedSQL = `
SELECT count(*)
FROM vocabulary_mastery
WHERE user_id = $1`

// Get returns the mastery record for one (user, vocabulary) pair.
// Returns domain.ErrNotFound if the word has never been answered.
func (r *Repo) Get(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.MasteryRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getSQL, userID, vocabularyID)
	rec, err := scanRecord(row)
	if err != nil {
		key := fmt.Sprintf("user=%s vocabulary=%s", userID, vocabularyID)
		return nil, postgres.MapError(err, "mastery record", key)
	}
	return rec, nil
}

// UpsertAnswer writes the answer counters and recomputed mastery level,
// creating the row if this is the first answer for the pair.
func (r *Repo) UpsertAnswer(ctx context.Context, userID, vocabularyID uuid.UUID, params domain.MasteryUpdateParams) (*domain.MasteryRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertAnswerSQL,
		userID,
		vocabularyID,
		params.CorrectCount,
		params.IncorrectCount,
		params.MasteryLevel,
		params.LastReviewedAt,
	)
	rec, err := scanRecord(row)
	if err != nil {
		key := fmt.Sprintf("user=%s vocabulary=%s", userID, vocabularyID)
		return nil, postgres.MapError(err, "mastery record", key)
	}
	return rec, nil
}

// UpsertSchedule writes the Leitner box state and next review date,
// creating the row if it does not exist yet.
func (r *Repo) UpsertSchedule(ctx context.Context, userID, vocabularyID uuid.UUID, params domain.ScheduleUpdateParams) (*domain.MasteryRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertScheduleSQL,
		userID,
		vocabularyID,
		params.SRSBox,
		params.SRSIntervalDays,
		params.NextReviewDate,
	)
	rec, err := scanRecord(row)
	if err != nil {
		key := fmt.Sprintf("user=%s vocabulary=%s", userID, vocabularyID)
		return nil, postgres.MapError(err, "mastery record", key)
	}
	return rec, nil
}

// ListDue returns the records due for review on the given date. The compare
// is date-only; rows with no scheduled date yet count as due.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, today time.Time) ([]domain.MasteryRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDueSQL, userID, today)
	if err != nil {
		return nil, fmt.Errorf("list due reviews: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListByUser returns every mastery record for the user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MasteryRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// CountByBox returns how many of the user's words sit in each Leitner box.
// Boxes with no words are absent from the result.
func (r *Repo) CountByBox(ctx context.Context, userID uuid.UUID) ([]domain.BoxCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countByBoxSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("count by box: %w", err)
	}
	defer rows.Close()

	var counts []domain.BoxCount
	for rows.Next() {
		var c domain.BoxCount
		if err := rows.Scan(&c.Box, &c.Count); err != nil {
			return nil, fmt.Errorf("scan box count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate box counts: %w", err)
	}
	return counts, nil
}

// CountMastered returns how many of the user's words reached the threshold.
func (r *Repo) CountMastered(ctx context.Context, userID uuid.UUID, threshold float64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countMasteredSQL, userID, threshold).Scan(&total); err != nil {
		return 0, fmt.Errorf("count mastered: %w", err)
	}
	return total, nil
}

// CountStudied returns how many distinct words the user has ever answered.
func (r *Repo) CountStudied(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countStudiedSQL, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count studied: %w", err)
	}
	return total, nil
}

func scanRecord(row pgx.Row) (*domain.MasteryRecord, error) {
	var rec domain.MasteryRecord
	err := row.Scan(
		&rec.UserID,
		&rec.VocabularyID,
		&rec.CorrectCount,
		&rec.IncorrectCount,
		&rec.MasteryLevel,
		&rec.SRSBox,
		&rec.SRSIntervalDays,
		&rec.NextReviewDate,
		&rec.LastReviewedAt,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func collectRecords(rows pgx.Rows) ([]domain.MasteryRecord, error) {
	var records []domain.MasteryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mastery row: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mastery rows: %w", err)
	}
	return records, nil
}

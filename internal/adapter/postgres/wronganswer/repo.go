// Package wronganswer implements the wrong-answer book repository using
// PostgreSQL. At most one live (unmastered) entry exists per
// (user, vocabulary) pair; mastered entries stay as history.
package wronganswer

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/cinevocab/backend/internal/adapter/postgres"
	"github.com/cinevocab/backend/internal/domain"
)

const columns = `id, user_id, vocabulary_id, wrong_answer, correct_answer, question_type,
	question_context, times_wrong, mastered, created_at, last_attempted_at`

// Repo stores the user's wrong-answer book.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new wrong-answer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getLiveSQL = `
SELECT ` + columns + `
FROM wrong_answers_book
WHERE user_id = $1 AND vocabulary_id = $2 AND mastered = false`

const createSQL = `
INSERT INTO wrong_answers_book (
	id, user_id, vocabulary_id, wrong_answer, correct_answer, question_type, question_context
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + columns

const incrementMissSQL = `
UPDATE wrong_answers_book SET
	times_wrong       = times_wrong + 1,
	wrong_answer      = $2,
	correct_answer    = $3,
	question_type     = $4,
	question_context  = $5,
	last_attempted_at = now()
WHERE id = $1
RETURNING ` + columns

const markMasteredSQL = `
UPDATE wrong_answers_book SET
	mastered          = true,
	last_attempted_at = now()
WHERE user_id = $1 AND vocabulary_id = $2 AND mastered = false`

const weaknessSQL = `
SELECT
	w.vocabulary_id,
	v.word,
	v.definition,
	v.level,
	v.movie_id,
	sum(w.times_wrong)    AS total_wrong,
	max(w.times_wrong)    AS max_times_wrong
FROM wrong_answers_book w
JOIN vocabulary_notes v ON v.id = w.vocabulary_id
WHERE w.user_id = $1 AND w.mastered = false
GROUP BY w.vocabulary_id, v.word, v.definition, v.level, v.movie_id
ORDER BY total_wrong DESC, max_times_wrong DESC
LIMIT $2`

// GetLive returns the unmastered entry for the pair, or domain.ErrNotFound.
func (r *Repo) GetLive(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.WrongAnswerEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getLiveSQL, userID, vocabularyID)
	entry, err := scanEntry(row)
	if err != nil {
		key := fmt.Sprintf("user=%s vocabulary=%s", userID, vocabularyID)
		return nil, postgres.MapError(err, "wrong answer entry", key)
	}
	return entry, nil
}

// Create inserts a fresh entry with times_wrong = 1. Returns
// domain.ErrAlreadyExists if a live entry for the pair already exists.
func (r *Repo) Create(ctx context.Context, entry domain.WrongAnswerEntry) (*domain.WrongAnswerEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		entry.ID,
		entry.UserID,
		entry.VocabularyID,
		entry.WrongAnswer,
		entry.CorrectAnswer,
		entry.QuestionType,
		entry.QuestionContext,
	)
	created, err := scanEntry(row)
	if err != nil {
		key := fmt.Sprintf("user=%s vocabulary=%s", entry.UserID, entry.VocabularyID)
		return nil, postgres.MapError(err, "wrong answer entry", key)
	}
	return created, nil
}

// IncrementMiss bumps the miss counter on an existing live entry and
// overwrites the latest answer snapshot.
func (r *Repo) IncrementMiss(ctx context.Context, id uuid.UUID, wrongAnswer, correctAnswer string, questionType domain.QuestionType, questionContext *string) (*domain.WrongAnswerEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, incrementMissSQL, id, wrongAnswer, correctAnswer, questionType, questionContext)
	entry, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "wrong answer entry", "id="+id.String())
	}
	return entry, nil
}

// MarkMastered retires the live entry for the pair, if any. Marking a pair
// with no live entry is a no-op.
func (r *Repo) MarkMastered(ctx context.Context, userID, vocabularyID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, markMasteredSQL, userID, vocabularyID); err != nil {
		return fmt.Errorf("mark wrong answer mastered: %w", err)
	}
	return nil
}

// List returns wrong-answer entries matching the filter, most recently
// attempted first. The filter joins vocabulary for movie and level matching.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.WrongAnswerFilter) ([]domain.WrongAnswerEntry, error) {
	prefixed := make([]string, 0, 11)
	for _, c := range []string{
		"id", "user_id", "vocabulary_id", "wrong_answer", "correct_answer", "question_type",
		"question_context", "times_wrong", "mastered", "created_at", "last_attempted_at",
	} {
		prefixed = append(prefixed, "w."+c)
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(prefixed...).
		From("wrong_answers_book w").
		Where(sq.Eq{"w.user_id": userID}).
		OrderBy("w.last_attempted_at DESC, w.id ASC")

	if filter.MovieID != nil || filter.Level != nil {
		builder = builder.Join("vocabulary_notes v ON v.id = w.vocabulary_id")
		if filter.MovieID != nil {
			builder = builder.Where(sq.Eq{"v.movie_id": *filter.MovieID})
		}
		if filter.Level != nil {
			builder = builder.Where(sq.Eq{"v.level": *filter.Level})
		}
	}
	if filter.Mastered != nil {
		builder = builder.Where(sq.Eq{"w.mastered": *filter.Mastered})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build wrong answer list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list wrong answers: %w", err)
	}
	defer rows.Close()

	var entries []domain.WrongAnswerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wrong answer row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wrong answer rows: %w", err)
	}
	return entries, nil
}

// WeaknessAnalysis aggregates the user's misses per word across live
// entries, worst first. Mastered history is excluded.
func (r *Repo) WeaknessAnalysis(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WeakSpot, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, weaknessSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("weakness analysis: %w", err)
	}
	defer rows.Close()

	var spots []domain.WeakSpot
	for rows.Next() {
		var s domain.WeakSpot
		err := rows.Scan(
			&s.VocabularyID,
			&s.Word,
			&s.Definition,
			&s.Level,
			&s.MovieID,
			&s.TotalWrong,
			&s.MaxTimesWrong,
		)
		if err != nil {
			return nil, fmt.Errorf("scan weak spot row: %w", err)
		}
		spots = append(spots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weak spot rows: %w", err)
	}
	return spots, nil
}

func scanEntry(row pgx.Row) (*domain.WrongAnswerEntry, error) {
	var entry domain.WrongAnswerEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.VocabularyID,
		&entry.WrongAnswer,
		&entry.CorrectAnswer,
		&entry.QuestionType,
		&entry.QuestionContext,
		&entry.TimesWrong,
		&entry.Mastered,
		&entry.CreatedAt,
		&entry.LastAttemptedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

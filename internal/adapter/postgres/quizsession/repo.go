// Package quizsession implements the quiz session and answer history
// repository using PostgreSQL.
package quizsession

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/cinevocab/backend/internal/adapter/postgres"
	"github.com/cinevocab/backend/internal/domain"
)

const sessionColumns = `id, user_id, movie_id, total_questions, correct_answers,
	time_spent_ms, status, started_at, completed_at`

const answerColumns = `id, session_id, vocabulary_id, question_type, question_text,
	user_answer, correct_answer, is_correct, time_spent_ms, answered_at`

// Repo stores quiz sessions and their per-question answers.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quiz session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO quiz_sessions (id, user_id, movie_id, total_questions, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM quiz_sessions
WHERE id = $1`

const appendAnswerSQL = `
INSERT INTO quiz_answers (
	id, session_id, vocabulary_id, question_type, question_text,
	user_answer, correct_answer, is_correct, time_spent_ms
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + answerColumns

const completeSQL = `
UPDATE quiz_sessions SET
	correct_answers = $2,
	time_spent_ms   = $3,
	status          = $4,
	completed_at    = now()
WHERE id = $1
RETURNING ` + sessionColumns

const listAnswersSQL = `
SELECT ` + answerColumns + `
FROM quiz_answers
WHERE session_id = $1
ORDER BY answered_at ASC, id ASC`

const listCompletedSQL = `
SELECT ` + sessionColumns + `
FROM quiz_sessions
WHERE user_id = $1 AND status = 'COMPLETED'
ORDER BY completed_at DESC
LIMIT $2`

const countCompletedSQL = `
SELECT count(*)
FROM quiz_sessions
WHERE user_id = $1 AND status = 'COMPLETED'`

const averageScoreSQL = `
SELECT avg(correct_answers::float / total_questions * 100)
FROM quiz_sessions
WHERE user_id = $1 AND status = 'COMPLETED' AND total_questions > 0`

// Create opens a new session in ACTIVE status.
func (r *Repo) Create(ctx context.Context, session domain.QuizSession) (*domain.QuizSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		session.ID,
		session.UserID,
		session.MovieID,
		session.TotalQuestions,
		session.Status,
	)
	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "quiz session", "id="+session.ID.String())
	}
	return created, nil
}

// GetByID returns one session. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuizSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "quiz session", "id="+id.String())
	}
	return session, nil
}

// AppendAnswer records one answered question within a session.
func (r *Repo) AppendAnswer(ctx context.Context, answer domain.QuizAnswer) (*domain.QuizAnswer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, appendAnswerSQL,
		answer.ID,
		answer.SessionID,
		answer.VocabularyID,
		answer.QuestionType,
		answer.QuestionText,
		answer.UserAnswer,
		answer.CorrectAnswer,
		answer.IsCorrect,
		answer.TimeSpentMs,
	)
	created, err := scanAnswer(row)
	if err != nil {
		return nil, postgres.MapError(err, "quiz answer", "session="+answer.SessionID.String())
	}
	return created, nil
}

// Complete closes a session with its final tallies and status.
func (r *Repo) Complete(ctx context.Context, id uuid.UUID, correctAnswers int, timeSpentMs *int64, status domain.SessionStatus) (*domain.QuizSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, completeSQL, id, correctAnswers, timeSpentMs, status)
	session, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "quiz session", "id="+id.String())
	}
	return session, nil
}

// ListAnswers returns a session's answers in the order they were given.
func (r *Repo) ListAnswers(ctx context.Context, sessionID uuid.UUID) ([]domain.QuizAnswer, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAnswersSQL, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list quiz answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.QuizAnswer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quiz answer row: %w", err)
		}
		answers = append(answers, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz answer rows: %w", err)
	}
	return answers, nil
}

// ListCompleted returns the user's finished sessions, newest first.
func (r *Repo) ListCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]domain.QuizSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listCompletedSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.QuizSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quiz session row: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz session rows: %w", err)
	}
	return sessions, nil
}

// CountCompleted returns how many sessions the user has finished.
func (r *Repo) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countCompletedSQL, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	return total, nil
}

// AverageScore returns the mean percentage across the user's completed
// sessions, or nil if none exist.
func (r *Repo) AverageScore(ctx context.Context, userID uuid.UUID) (*float64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var avg *float64
	if err := querier.QueryRow(ctx, averageScoreSQL, userID).Scan(&avg); err != nil {
		return nil, fmt.Errorf("average session score: %w", err)
	}
	return avg, nil
}

func scanSession(row pgx.Row) (*domain.QuizSession, error) {
	var s domain.QuizSession
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.MovieID,
		&s.TotalQuestions,
		&s.CorrectAnswers,
		&s.TimeSpentMs,
		&s.Status,
		&s.StartedAt,
		&s.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanAnswer(row pgx.Row) (*domain.QuizAnswer, error) {
	var a domain.QuizAnswer
	err := row.Scan(
		&a.ID,
		&a.SessionID,
		&a.VocabularyID,
		&a.QuestionType,
		&a.QuestionText,
		&a.UserAnswer,
		&a.CorrectAnswer,
		&a.IsCorrect,
		&a.TimeSpentMs,
		&a.AnsweredAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

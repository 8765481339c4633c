// Package vocabulary implements the read-only vocabulary repository using
// PostgreSQL. The pool fetch uses squirrel because the filter is dynamic;
// point lookups use raw SQL.
package vocabulary

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/cinevocab/backend/internal/adapter/postgres"
	"github.com/cinevocab/backend/internal/domain"
)

const columns = `id, word, part_of_speech, definition, level, original_sentence, example_sentences, movie_id, created_at`

// Repo provides vocabulary reads backed by PostgreSQL. Vocabulary rows are
// written by the ingestion pipeline; this service never mutates them.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `SELECT ` + columns + ` FROM vocabulary_notes WHERE id = $1`

const getByIDsSQL = `SELECT ` + columns + ` FROM vocabulary_notes WHERE id = ANY($1::uuid[])`

const countSQL = `SELECT count(*) FROM vocabulary_notes`

// GetByID returns one vocabulary item. Returns domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)
	v, err := scanVocabulary(row)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary", "id="+id.String())
	}
	return v, nil
}

// GetByIDs returns the vocabulary items for the given IDs. Missing IDs are
// silently absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error) {
	if len(ids) == 0 {
		return []domain.Vocabulary{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary by ids: %w", err)
	}
	defer rows.Close()

	return collectVocabulary(rows)
}

// List returns the vocabulary pool matching the filter. A zero filter returns
// the entire catalog; Limit <= 0 means no limit.
func (r *Repo) List(ctx context.Context, filter domain.VocabularyFilter) ([]domain.Vocabulary, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(columns).
		From("vocabulary_notes").
		OrderBy("created_at ASC, id ASC")

	if filter.MovieID != nil {
		builder = builder.Where(sq.Eq{"movie_id": *filter.MovieID})
	}
	if filter.Level != nil {
		builder = builder.Where(sq.Eq{"level": *filter.Level})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	defer rows.Close()

	return collectVocabulary(rows)
}

// Count returns the total number of vocabulary items in the catalog.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return 0, fmt.Errorf("count vocabulary: %w", err)
	}
	return total, nil
}

func scanVocabulary(row pgx.Row) (*domain.Vocabulary, error) {
	var (
		v            domain.Vocabulary
		partOfSpeech *string
		sentences    []byte
	)
	err := row.Scan(
		&v.ID,
		&v.Word,
		&partOfSpeech,
		&v.Definition,
		&v.Level,
		&v.OriginalSentence,
		&sentences,
		&v.MovieID,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if partOfSpeech != nil {
		pos := domain.PartOfSpeech(*partOfSpeech)
		v.PartOfSpeech = &pos
	}
	if len(sentences) > 0 {
		if err := json.Unmarshal(sentences, &v.ExampleSentences); err != nil {
			return nil, fmt.Errorf("decode example_sentences for %s: %w", v.ID, err)
		}
	}

	return &v, nil
}

func collectVocabulary(rows pgx.Rows) ([]domain.Vocabulary, error) {
	var items []domain.Vocabulary
	for rows.Next() {
		v, err := scanVocabulary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vocabulary row: %w", err)
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vocabulary rows: %w", err)
	}
	return items, nil
}

package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinevocab/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting
// test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedVocabulary inserts one vocabulary item with generated word and
// definition. Optional fields are left NULL unless set via mutate.
func SeedVocabulary(t *testing.T, pool *pgxpool.Pool, mutate ...func(*domain.Vocabulary)) domain.Vocabulary {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	v := domain.Vocabulary{
		ID:         uuid.New(),
		Word:       "word-" + suffix,
		Definition: "definition of word-" + suffix,
		Level:      domain.LevelIntermediate,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, fn := range mutate {
		fn(&v)
	}

	sentences, err := json.Marshal(v.ExampleSentences)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabulary marshal sentences: %v", err)
	}
	if v.ExampleSentences == nil {
		sentences = []byte("[]")
	}

	var pos *string
	if v.PartOfSpeech != nil {
		s := v.PartOfSpeech.String()
		pos = &s
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO vocabulary_notes (id, word, part_of_speech, definition, level, original_sentence, example_sentences, movie_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		v.ID, v.Word, pos, v.Definition, string(v.Level), v.OriginalSentence, sentences, v.MovieID, v.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabulary insert: %v", err)
	}

	return v
}

// SeedMastery inserts a mastery row for the pair with the given counters and
// box state.
func SeedMastery(t *testing.T, pool *pgxpool.Pool, userID, vocabularyID uuid.UUID, mutate ...func(*domain.MasteryRecord)) domain.MasteryRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.MasteryRecord{
		UserID:          userID,
		VocabularyID:    vocabularyID,
		SRSBox:          domain.MinBox,
		SRSIntervalDays: 1,
	}
	for _, fn := range mutate {
		fn(&rec)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vocabulary_mastery (user_id, vocabulary_id, correct_count, incorrect_count, mastery_level, srs_box, srs_interval_days, next_review_date, last_reviewed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.UserID, rec.VocabularyID, rec.CorrectCount, rec.IncorrectCount, rec.MasteryLevel,
		rec.SRSBox, rec.SRSIntervalDays, rec.NextReviewDate, rec.LastReviewedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMastery insert: %v", err)
	}

	return rec
}

// SeedWrongAnswer inserts a wrong-answer entry for the pair.
func SeedWrongAnswer(t *testing.T, pool *pgxpool.Pool, userID, vocabularyID uuid.UUID, mutate ...func(*domain.WrongAnswerEntry)) domain.WrongAnswerEntry {
	t.Helper()
	ctx := context.Background()

	entry := domain.WrongAnswerEntry{
		ID:            uuid.New(),
		UserID:        userID,
		VocabularyID:  vocabularyID,
		WrongAnswer:   "wrong-" + uniqueSuffix(),
		CorrectAnswer: "correct-" + uniqueSuffix(),
		QuestionType:  domain.QuestionTypeWordToMeaning,
		TimesWrong:    1,
	}
	for _, fn := range mutate {
		fn(&entry)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO wrong_answers_book (id, user_id, vocabulary_id, wrong_answer, correct_answer, question_type, question_context, times_wrong, mastered)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.UserID, entry.VocabularyID, entry.WrongAnswer, entry.CorrectAnswer,
		string(entry.QuestionType), entry.QuestionContext, entry.TimesWrong, entry.Mastered,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWrongAnswer insert: %v", err)
	}

	return entry
}

// SeedSession inserts a quiz session.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, mutate ...func(*domain.QuizSession)) domain.QuizSession {
	t.Helper()
	ctx := context.Background()

	session := domain.QuizSession{
		ID:             uuid.New(),
		UserID:         userID,
		TotalQuestions: 5,
		Status:         domain.SessionStatusActive,
	}
	for _, fn := range mutate {
		fn(&session)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO quiz_sessions (id, user_id, movie_id, total_questions, correct_answers, time_spent_ms, status, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		session.ID, session.UserID, session.MovieID, session.TotalQuestions,
		session.CorrectAnswers, session.TimeSpentMs, string(session.Status), session.CompletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return session
}

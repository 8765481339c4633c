package quiz

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGeneratorService(pool []domain.Vocabulary, seed int64) *Service {
	vocab := &vocabularyRepoMock{
		ListFunc: func(ctx context.Context, filter domain.VocabularyFilter) ([]domain.Vocabulary, error) {
			return pool, nil
		},
	}
	return NewService(testLogger(), vocab, &sessionRepoMock{}, &answerRecorderMock{}, &weakSpotSourceMock{}, &txManagerMock{}, Config{
		DefaultQuestionCount: 10,
		MaxQuestionCount:     50,
		DistractorRetries:    3,
		HistoryLimit:         20,
		Rand:                 rand.New(rand.NewSource(seed)),
	})
}

func makePool(n int, level domain.Level) []domain.Vocabulary {
	pool := make([]domain.Vocabulary, 0, n)
	for i := 0; i < n; i++ {
		word := string(rune('a'+i)) + "-word"
		def := string(rune('a'+i)) + "-definition"
		pool = append(pool, domain.Vocabulary{
			ID:         uuid.New(),
			Word:       word,
			Definition: def,
			Level:      level,
		})
	}
	return pool
}

func authedCtx() context.Context {
	return ctxutil.WithUserID(context.Background(), uuid.New())
}

func TestService_Generate_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newGeneratorService(nil, 1)
	if _, err := svc.Generate(context.Background(), GenerateInput{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestService_Generate_EmptyPool(t *testing.T) {
	t.Parallel()

	svc := newGeneratorService(nil, 1)
	questions, err := svc.Generate(authedCtx(), GenerateInput{Count: 5})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("len(questions) = %d, want 0", len(questions))
	}
}

func TestService_Generate_NoDuplicateVocabulary(t *testing.T) {
	t.Parallel()

	pool := makePool(12, domain.LevelIntermediate)
	svc := newGeneratorService(pool, 42)

	questions, err := svc.Generate(authedCtx(), GenerateInput{Count: 8})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("expected questions")
	}
	if len(questions) > 8 {
		t.Errorf("len(questions) = %d, want <= 8", len(questions))
	}

	seen := make(map[uuid.UUID]bool)
	for _, q := range questions {
		if seen[q.VocabularyID] {
			t.Errorf("vocabulary %s appears twice", q.VocabularyID)
		}
		seen[q.VocabularyID] = true
	}
}

func TestService_Generate_CountCappedByPool(t *testing.T) {
	t.Parallel()

	pool := makePool(5, domain.LevelBeginner)
	svc := newGeneratorService(pool, 7)

	questions, err := svc.Generate(authedCtx(), GenerateInput{Count: 50})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) > 5 {
		t.Errorf("len(questions) = %d, want <= pool size 5", len(questions))
	}
}

func TestService_Generate_OptionsWellFormed(t *testing.T) {
	t.Parallel()

	pool := makePool(10, domain.LevelAdvanced)
	svc := newGeneratorService(pool, 99)

	questions, err := svc.Generate(authedCtx(), GenerateInput{Count: 10})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("expected questions")
	}

	for _, q := range questions {
		if len(q.Options) != domain.OptionCount {
			t.Fatalf("question %q: %d options, want %d", q.Text, len(q.Options), domain.OptionCount)
		}
		found := false
		seen := make(map[string]bool)
		for _, opt := range q.Options {
			if seen[opt] {
				t.Errorf("question %q: duplicate option %q", q.Text, opt)
			}
			seen[opt] = true
			if opt == q.CorrectAnswer {
				found = true
			}
		}
		if !found {
			t.Errorf("question %q: correct answer %q not among options", q.Text, q.CorrectAnswer)
		}
	}
}

// A three-item pool can never yield the three distractors a question needs,
// so the quiz comes out empty.
func TestService_Generate_TinyPoolYieldsNothing(t *testing.T) {
	t.Parallel()

	pool := makePool(3, domain.LevelBeginner)
	svc := newGeneratorService(pool, 3)

	questions, err := svc.Generate(authedCtx(), GenerateInput{Count: 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("len(questions) = %d, want 0 from a 3-item pool", len(questions))
	}
}

func TestService_Generate_ClozeDegradesWithoutSentence(t *testing.T) {
	t.Parallel()

	pool := makePool(6, domain.LevelIntermediate)
	// No item has an original sentence, so cloze must never appear.
	svc := newGeneratorService(pool, 11)

	questions, err := svc.Generate(authedCtx(), GenerateInput{
		Count:        6,
		AllowedTypes: []domain.QuestionType{domain.QuestionTypeClozeToMeaning},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("expected questions")
	}
	for _, q := range questions {
		if q.Type != domain.QuestionTypeWordToMeaning {
			t.Errorf("question type = %v, want WORD_TO_MEANING fallback", q.Type)
		}
		if q.CorrectAnswer == q.Word {
			t.Errorf("degraded cloze should ask for meaning, got answer %q", q.CorrectAnswer)
		}
	}
}

func TestService_Generate_ClozeBlanksTheWord(t *testing.T) {
	t.Parallel()

	pool := makePool(6, domain.LevelIntermediate)
	sentence := "The Dude abides, and the dude never changes."
	pool[0].Word = "dude"
	pool[0].Definition = "an informal term for a man"
	pool[0].OriginalSentence = &sentence

	svc := newGeneratorService(pool, 5)

	questions, err := svc.Generate(authedCtx(), GenerateInput{
		Count:        6,
		AllowedTypes: []domain.QuestionType{domain.QuestionTypeClozeToMeaning},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, q := range questions {
		if q.Type != domain.QuestionTypeClozeToMeaning {
			continue
		}
		if strings.Contains(strings.ToLower(q.Text), "dude") {
			t.Errorf("cloze text still contains the word: %q", q.Text)
		}
		if !strings.Contains(q.Text, BlankMarker) {
			t.Errorf("cloze text has no blank marker: %q", q.Text)
		}
		if q.CorrectAnswer != "an informal term for a man" {
			t.Errorf("cloze answer = %q, want the definition", q.CorrectAnswer)
		}
	}
}

func TestBlankOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sentence string
		word     string
		want     string
	}{
		{"simple", "I abide here", "abide", "I _____ here"},
		{"case insensitive", "Abide, and ABIDE again", "abide", "_____, and _____ again"},
		{"whole word only", "abidexyz stays", "abide", "abidexyz stays"},
		{"word absent", "nothing matches", "abide", "nothing matches"},
		{"regex metacharacters", "costs $5 (five)", "$5", "costs $5 (five)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := blankOut(tt.sentence, tt.word); got != tt.want {
				t.Errorf("blankOut(%q, %q) = %q, want %q", tt.sentence, tt.word, got, tt.want)
			}
		})
	}
}

func TestPickDistractors(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(21))

	t.Run("prefers same level", func(t *testing.T) {
		pool := append(makePool(5, domain.LevelBeginner), makePool(5, domain.LevelAdvanced)...)
		target := pool[0]

		for i := 0; i < 20; i++ {
			picked, err := pickDistractors(rng, pool, target, 3)
			if err != nil {
				t.Fatalf("pickDistractors: %v", err)
			}
			for _, d := range picked {
				if d.Level != domain.LevelBeginner {
					t.Errorf("picked %v item, want same level", d.Level)
				}
				if d.ID == target.ID {
					t.Error("target picked as its own distractor")
				}
			}
		}
	})

	t.Run("falls back to full pool", func(t *testing.T) {
		pool := append(makePool(2, domain.LevelBeginner), makePool(4, domain.LevelAdvanced)...)
		target := pool[0]

		picked, err := pickDistractors(rng, pool, target, 3)
		if err != nil {
			t.Fatalf("pickDistractors: %v", err)
		}
		if len(picked) != 3 {
			t.Fatalf("len(picked) = %d, want 3", len(picked))
		}
	})

	t.Run("insufficient pool fails", func(t *testing.T) {
		pool := makePool(3, domain.LevelBeginner)
		if _, err := pickDistractors(rng, pool, pool[0], 3); !errors.Is(err, errInsufficientDistractors) {
			t.Fatalf("err = %v, want errInsufficientDistractors", err)
		}
	})
}

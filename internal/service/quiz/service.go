// Package quiz implements quiz generation and session play: question
// building with distractor selection, pure scoring, and the persistent
// session lifecycle that records every answer through the study service.
package quiz

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/internal/service/study"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabularyRepo interface {
	List(ctx context.Context, filter domain.VocabularyFilter) ([]domain.Vocabulary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error)
}

type sessionRepo interface {
	Create(ctx context.Context, session domain.QuizSession) (*domain.QuizSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.QuizSession, error)
	AppendAnswer(ctx context.Context, answer domain.QuizAnswer) (*domain.QuizAnswer, error)
	Complete(ctx context.Context, id uuid.UUID, correctAnswers int, timeSpentMs *int64, status domain.SessionStatus) (*domain.QuizSession, error)
	ListAnswers(ctx context.Context, sessionID uuid.UUID) ([]domain.QuizAnswer, error)
	ListCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]domain.QuizSession, error)
}

type answerRecorder interface {
	RecordAnswer(ctx context.Context, in study.RecordAnswerInput) (*study.RecordAnswerResult, error)
}

type weakSpotSource interface {
	Weakness(ctx context.Context) ([]domain.WeakSpot, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the quiz service tunables.
type Config struct {
	// DefaultQuestionCount is used when the caller asks for 0 questions.
	DefaultQuestionCount int
	// MaxQuestionCount caps one quiz.
	MaxQuestionCount int
	// DistractorRetries is how many fresh draws to attempt when distractor
	// texts collide with the correct answer.
	DistractorRetries int
	// HistoryLimit caps the session history listing.
	HistoryLimit int
	// Rand drives shuffling and type selection; defaults to a time-seeded
	// source.
	Rand *rand.Rand
}

// Service implements the quiz business logic.
type Service struct {
	vocabulary vocabularyRepo
	sessions   sessionRepo
	recorder   answerRecorder
	weakSpots  weakSpotSource
	tx         txManager
	log        *slog.Logger
	cfg        Config
}

// NewService creates a new Quiz service.
func NewService(
	log *slog.Logger,
	vocabulary vocabularyRepo,
	sessions sessionRepo,
	recorder answerRecorder,
	weakSpots weakSpotSource,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.DefaultQuestionCount <= 0 {
		cfg.DefaultQuestionCount = 10
	}
	if cfg.MaxQuestionCount <= 0 {
		cfg.MaxQuestionCount = 50
	}
	if cfg.DistractorRetries <= 0 {
		cfg.DistractorRetries = 3
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 20
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Service{
		vocabulary: vocabulary,
		sessions:   sessions,
		recorder:   recorder,
		weakSpots:  weakSpots,
		tx:         tx,
		log:        log.With("service", "quiz"),
		cfg:        cfg,
	}
}

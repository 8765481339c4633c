package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/internal/service/study"
)

var _ vocabularyRepo = &vocabularyRepoMock{}

type vocabularyRepoMock struct {
	ListFunc     func(ctx context.Context, filter domain.VocabularyFilter) ([]domain.Vocabulary, error)
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error)
}

func (m *vocabularyRepoMock) List(ctx context.Context, filter domain.VocabularyFilter) ([]domain.Vocabulary, error) {
	if m.ListFunc == nil {
		panic("vocabularyRepoMock.ListFunc: method is nil but vocabularyRepo.List was just called")
	}
	return m.ListFunc(ctx, filter)
}

func (m *vocabularyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	if m.GetByIDFunc == nil {
		panic("vocabularyRepoMock.GetByIDFunc: method is nil but vocabularyRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *vocabularyRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error) {
	if m.GetByIDsFunc == nil {
		panic("vocabularyRepoMock.GetByIDsFunc: method is nil but vocabularyRepo.GetByIDs was just called")
	}
	return m.GetByIDsFunc(ctx, ids)
}

var _ weakSpotSource = &weakSpotSourceMock{}

type weakSpotSourceMock struct {
	WeaknessFunc func(ctx context.Context) ([]domain.WeakSpot, error)
}

func (m *weakSpotSourceMock) Weakness(ctx context.Context) ([]domain.WeakSpot, error) {
	if m.WeaknessFunc == nil {
		panic("weakSpotSourceMock.WeaknessFunc: method is nil but weakSpotSource.Weakness was just called")
	}
	return m.WeaknessFunc(ctx)
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc        func(ctx context.Context, session domain.QuizSession) (*domain.QuizSession, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.QuizSession, error)
	AppendAnswerFunc  func(ctx context.Context, answer domain.QuizAnswer) (*domain.QuizAnswer, error)
	CompleteFunc      func(ctx context.Context, id uuid.UUID, correctAnswers int, timeSpentMs *int64, status domain.SessionStatus) (*domain.QuizSession, error)
	ListAnswersFunc   func(ctx context.Context, sessionID uuid.UUID) ([]domain.QuizAnswer, error)
	ListCompletedFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.QuizSession, error)
}

func (m *sessionRepoMock) Create(ctx context.Context, session domain.QuizSession) (*domain.QuizSession, error) {
	if m.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	return m.CreateFunc(ctx, session)
}

func (m *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.QuizSession, error) {
	if m.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *sessionRepoMock) AppendAnswer(ctx context.Context, answer domain.QuizAnswer) (*domain.QuizAnswer, error) {
	if m.AppendAnswerFunc == nil {
		panic("sessionRepoMock.AppendAnswerFunc: method is nil but sessionRepo.AppendAnswer was just called")
	}
	return m.AppendAnswerFunc(ctx, answer)
}

func (m *sessionRepoMock) Complete(ctx context.Context, id uuid.UUID, correctAnswers int, timeSpentMs *int64, status domain.SessionStatus) (*domain.QuizSession, error) {
	if m.CompleteFunc == nil {
		panic("sessionRepoMock.CompleteFunc: method is nil but sessionRepo.Complete was just called")
	}
	return m.CompleteFunc(ctx, id, correctAnswers, timeSpentMs, status)
}

func (m *sessionRepoMock) ListAnswers(ctx context.Context, sessionID uuid.UUID) ([]domain.QuizAnswer, error) {
	if m.ListAnswersFunc == nil {
		panic("sessionRepoMock.ListAnswersFunc: method is nil but sessionRepo.ListAnswers was just called")
	}
	return m.ListAnswersFunc(ctx, sessionID)
}

func (m *sessionRepoMock) ListCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]domain.QuizSession, error) {
	if m.ListCompletedFunc == nil {
		panic("sessionRepoMock.ListCompletedFunc: method is nil but sessionRepo.ListCompleted was just called")
	}
	return m.ListCompletedFunc(ctx, userID, limit)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly without a transaction. RunInTxFunc
// overrides that when a test needs to observe or fail the unit of work.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

var _ answerRecorder = &answerRecorderMock{}

type answerRecorderMock struct {
	RecordAnswerFunc func(ctx context.Context, in study.RecordAnswerInput) (*study.RecordAnswerResult, error)

	mu    sync.Mutex
	calls []study.RecordAnswerInput
}

func (m *answerRecorderMock) RecordAnswer(ctx context.Context, in study.RecordAnswerInput) (*study.RecordAnswerResult, error) {
	if m.RecordAnswerFunc == nil {
		panic("answerRecorderMock.RecordAnswerFunc: method is nil but answerRecorder.RecordAnswer was just called")
	}
	m.mu.Lock()
	m.calls = append(m.calls, in)
	m.mu.Unlock()
	return m.RecordAnswerFunc(ctx, in)
}

func (m *answerRecorderMock) RecordAnswerCalls() []study.RecordAnswerInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

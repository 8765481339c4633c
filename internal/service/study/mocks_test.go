package study

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
)

var _ masteryRepo = &masteryRepoMock{}

type masteryRepoMock struct {
	GetFunc            func(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.MasteryRecord, error)
	UpsertAnswerFunc   func(ctx context.Context, userID, vocabularyID uuid.UUID, params domain.MasteryUpdateParams) (*domain.MasteryRecord, error)
	UpsertScheduleFunc func(ctx context.Context, userID, vocabularyID uuid.UUID, params domain.ScheduleUpdateParams) (*domain.MasteryRecord, error)
	ListDueFunc        func(ctx context.Context, userID uuid.UUID, today time.Time) ([]domain.MasteryRecord, error)
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.MasteryRecord, error)
	CountByBoxFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.BoxCount, error)
	CountMasteredFunc  func(ctx context.Context, userID uuid.UUID, threshold float64) (int, error)
	CountStudiedFunc   func(ctx context.Context, userID uuid.UUID) (int, error)
}

func (m *masteryRepoMock) Get(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.MasteryRecord, error) {
	if m.GetFunc == nil {
		panic("masteryRepoMock.GetFunc: method is nil but masteryRepo.Get was just called")
	}
	return m.GetFunc(ctx, userID, vocabularyID)
}

func (m *masteryRepoMock) UpsertAnswer(ctx context.Context, userID, vocabularyID uuid.UUID, params domain.MasteryUpdateParams) (*domain.MasteryRecord, error) {
	if m.UpsertAnswerFunc == nil {
		panic("masteryRepoMock.UpsertAnswerFunc: method is nil but masteryRepo.UpsertAnswer was just called")
	}
	return m.UpsertAnswerFunc(ctx, userID, vocabularyID, params)
}

func (m *masteryRepoMock) UpsertSchedule(ctx context.Context, userID, vocabularyID uuid.UUID, params domain.ScheduleUpdateParams) (*domain.MasteryRecord, error) {
	if m.UpsertScheduleFunc == nil {
		panic("masteryRepoMock.UpsertScheduleFunc: method is nil but masteryRepo.UpsertSchedule was just called")
	}
	return m.UpsertScheduleFunc(ctx, userID, vocabularyID, params)
}

func (m *masteryRepoMock) ListDue(ctx context.Context, userID uuid.UUID, today time.Time) ([]domain.MasteryRecord, error) {
	if m.ListDueFunc == nil {
		panic("masteryRepoMock.ListDueFunc: method is nil but masteryRepo.ListDue was just called")
	}
	return m.ListDueFunc(ctx, userID, today)
}

func (m *masteryRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MasteryRecord, error) {
	if m.ListByUserFunc == nil {
		panic("masteryRepoMock.ListByUserFunc: method is nil but masteryRepo.ListByUser was just called")
	}
	return m.ListByUserFunc(ctx, userID)
}

func (m *masteryRepoMock) CountByBox(ctx context.Context, userID uuid.UUID) ([]domain.BoxCount, error) {
	if m.CountByBoxFunc == nil {
		panic("masteryRepoMock.CountByBoxFunc: method is nil but masteryRepo.CountByBox was just called")
	}
	return m.CountByBoxFunc(ctx, userID)
}

func (m *masteryRepoMock) CountMastered(ctx context.Context, userID uuid.UUID, threshold float64) (int, error) {
	if m.CountMasteredFunc == nil {
		panic("masteryRepoMock.CountMasteredFunc: method is nil but masteryRepo.CountMastered was just called")
	}
	return m.CountMasteredFunc(ctx, userID, threshold)
}

func (m *masteryRepoMock) CountStudied(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountStudiedFunc == nil {
		panic("masteryRepoMock.CountStudiedFunc: method is nil but masteryRepo.CountStudied was just called")
	}
	return m.CountStudiedFunc(ctx, userID)
}

var _ vocabularyRepo = &vocabularyRepoMock{}

type vocabularyRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error)
	CountFunc    func(ctx context.Context) (int, error)
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

func (m *vocabularyRepoMock) Count(ctx context.Context) (int, error) {
	if m.CountFunc == nil {
		panic("vocabularyRepoMock.CountFunc: method is nil but vocabularyRepo.Count was just called")
	}
	return m.CountFunc(ctx)
}

var _ wrongAnswerRecorder = &wrongAnswerRecorderMock{}

type wrongAnswerRecorderMock struct {
	RecordMissFunc   func(ctx context.Context, entry domain.WrongAnswerEntry) (*domain.WrongAnswerEntry, error)
	MarkMasteredFunc func(ctx context.Context, userID, vocabularyID uuid.UUID) error

	mu           sync.Mutex
	recordCalls  []domain.WrongAnswerEntry
	masteredPair [][2]uuid.UUID
}

func (m *wrongAnswerRecorderMock) RecordMiss(ctx context.Context, entry domain.WrongAnswerEntry) (*domain.WrongAnswerEntry, error) {
	if m.RecordMissFunc == nil {
		panic("wrongAnswerRecorderMock.RecordMissFunc: method is nil but wrongAnswerRecorder.RecordMiss was just called")
	}
	m.mu.Lock()
	m.recordCalls = append(m.recordCalls, entry)
	m.mu.Unlock()
	return m.RecordMissFunc(ctx, entry)
}

func (m *wrongAnswerRecorderMock) RecordMissCalls() []domain.WrongAnswerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recordCalls
}

func (m *wrongAnswerRecorderMock) MarkMastered(ctx context.Context, userID, vocabularyID uuid.UUID) error {
	if m.MarkMasteredFunc == nil {
		panic("wrongAnswerRecorderMock.MarkMasteredFunc: method is nil but wrongAnswerRecorder.MarkMastered was just called")
	}
	m.mu.Lock()
	m.masteredPair = append(m.masteredPair, [2]uuid.UUID{userID, vocabularyID})
	m.mu.Unlock()
	return m.MarkMasteredFunc(ctx, userID, vocabularyID)
}

func (m *wrongAnswerRecorderMock) MarkMasteredCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.masteredPair
}

var _ streakRepo = &streakRepoMock{}

type streakRepoMock struct {
	GetFunc    func(ctx context.Context, userID uuid.UUID) (*domain.LearningStreak, error)
	UpsertFunc func(ctx context.Context, s domain.LearningStreak) (*domain.LearningStreak, error)
}

func (m *streakRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.LearningStreak, error) {
	if m.GetFunc == nil {
		panic("streakRepoMock.GetFunc: method is nil but streakRepo.Get was just called")
	}
	return m.GetFunc(ctx, userID)
}

func (m *streakRepoMock) Upsert(ctx context.Context, s domain.LearningStreak) (*domain.LearningStreak, error) {
	if m.UpsertFunc == nil {
		panic("streakRepoMock.UpsertFunc: method is nil but streakRepo.Upsert was just called")
	}
	return m.UpsertFunc(ctx, s)
}

var _ quizStatsRepo = &quizStatsRepoMock{}

type quizStatsRepoMock struct {
	CountCompletedFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	AverageScoreFunc   func(ctx context.Context, userID uuid.UUID) (*float64, error)
}

func (m *quizStatsRepoMock) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountCompletedFunc == nil {
		panic("quizStatsRepoMock.CountCompletedFunc: method is nil but quizStatsRepo.CountCompleted was just called")
	}
	return m.CountCompletedFunc(ctx, userID)
}

func (m *quizStatsRepoMock) AverageScore(ctx context.Context, userID uuid.UUID) (*float64, error) {
	if m.AverageScoreFunc == nil {
		panic("quizStatsRepoMock.AverageScoreFunc: method is nil but quizStatsRepo.AverageScore was just called")
	}
	return m.AverageScoreFunc(ctx, userID)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly without a transaction.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

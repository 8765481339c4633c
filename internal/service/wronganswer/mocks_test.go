package wronganswer

import (
	"context"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
)

var _ wrongAnswerRepo = &wrongAnswerRepoMock{}

type wrongAnswerRepoMock struct {
	GetLiveFunc          func(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.WrongAnswerEntry, error)
	CreateFunc           func(ctx context.Context, entry domain.WrongAnswerEntry) (*domain.WrongAnswerEntry, error)
	IncrementMissFunc    func(ctx context.Context, id uuid.UUID, wrongAnswer, correctAnswer string, questionType domain.QuestionType, questionContext *string) (*domain.WrongAnswerEntry, error)
	MarkMasteredFunc     func(ctx context.Context, userID, vocabularyID uuid.UUID) error
	ListFunc             func(ctx context.Context, userID uuid.UUID, filter domain.WrongAnswerFilter) ([]domain.WrongAnswerEntry, error)
	WeaknessAnalysisFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WeakSpot, error)
}

func (m *wrongAnswerRepoMock) GetLive(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.WrongAnswerEntry, error) {
	if m.GetLiveFunc == nil {
		panic("wrongAnswerRepoMock.GetLiveFunc: method is nil but wrongAnswerRepo.GetLive was just called")
	}
	return m.GetLiveFunc(ctx, userID, vocabularyID)
}

func (m *wrongAnswerRepoMock) Create(ctx context.Context, entry domain.WrongAnswerEntry) (*domain.WrongAnswerEntry, error) {
	if m.CreateFunc == nil {
		panic("wrongAnswerRepoMock.CreateFunc: method is nil but wrongAnswerRepo.Create was just called")
	}
	return m.CreateFunc(ctx, entry)
}

func (m *wrongAnswerRepoMock) IncrementMiss(ctx context.Context, id uuid.UUID, wrongAnswer, correctAnswer string, questionType domain.QuestionType, questionContext *string) (*domain.WrongAnswerEntry, error) {
	if m.IncrementMissFunc == nil {
		panic("wrongAnswerRepoMock.IncrementMissFunc: method is nil but wrongAnswerRepo.IncrementMiss was just called")
	}
	return m.IncrementMissFunc(ctx, id, wrongAnswer, correctAnswer, questionType, questionContext)
}

func (m *wrongAnswerRepoMock) MarkMastered(ctx context.Context, userID, vocabularyID uuid.UUID) error {
	if m.MarkMasteredFunc == nil {
		panic("wrongAnswerRepoMock.MarkMasteredFunc: method is nil but wrongAnswerRepo.MarkMastered was just called")
	}
	return m.MarkMasteredFunc(ctx, userID, vocabularyID)
}

func (m *wrongAnswerRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.WrongAnswerFilter) ([]domain.WrongAnswerEntry, error) {
	if m.ListFunc == nil {
		panic("wrongAnswerRepoMock.ListFunc: method is nil but wrongAnswerRepo.List was just called")
	}
	return m.ListFunc(ctx, userID, filter)
}

func (m *wrongAnswerRepoMock) WeaknessAnalysis(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WeakSpot, error) {
	if m.WeaknessAnalysisFunc == nil {
		panic("wrongAnswerRepoMock.WeaknessAnalysisFunc: method is nil but wrongAnswerRepo.WeaknessAnalysis was just called")
	}
	return m.WeaknessAnalysisFunc(ctx, userID, limit)
}

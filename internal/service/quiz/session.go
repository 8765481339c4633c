package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/internal/service/study"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

// StartSession opens a session covering the given questions. Answers are
// recorded one at a time as the user plays; an abandoned session keeps its
// partial progress.
func (s *Service) StartSession(ctx context.Context, movieID *uuid.UUID, questions []domain.Question) (*domain.QuizSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if len(questions) == 0 {
		return nil, domain.NewValidationError("questions", "required")
	}

	session, err := s.sessions.Create(ctx, domain.QuizSession{
		ID:             uuid.New(),
		UserID:         userID,
		MovieID:        movieID,
		TotalQuestions: len(questions),
		Status:         domain.SessionStatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "quiz session started",
		"session_id", session.ID,
		"user_id", userID,
		"questions", len(questions),
	)
	return session, nil
}

// SubmitAnswer grades one answer, appends it to the session history, and
// routes it through the study service so mastery, scheduling, the streak,
// and the wrong-answer book all update in one transaction.
func (s *Service) SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (*domain.QuizAnswer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if session.Status != domain.SessionStatusActive {
		return nil, fmt.Errorf("session %s: %w", session.ID, domain.ErrConflict)
	}

	correct := in.UserAnswer == in.Question.CorrectAnswer

	var questionContext *string
	if in.Question.Type == domain.QuestionTypeClozeToMeaning {
		questionContext = &in.Question.Text
	}

	// The mastery update and the session row commit or roll back together.
	var answer *domain.QuizAnswer
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.recorder.RecordAnswer(ctx, study.RecordAnswerInput{
			VocabularyID:    in.Question.VocabularyID,
			Correct:         correct,
			UserAnswer:      in.UserAnswer,
			CorrectAnswer:   in.Question.CorrectAnswer,
			QuestionType:    in.Question.Type,
			QuestionContext: questionContext,
		}); err != nil {
			return fmt.Errorf("record answer: %w", err)
		}

		answer, err = s.sessions.AppendAnswer(ctx, domain.QuizAnswer{
			ID:            uuid.New(),
			SessionID:     session.ID,
			VocabularyID:  in.Question.VocabularyID,
			QuestionType:  in.Question.Type,
			QuestionText:  in.Question.Text,
			UserAnswer:    in.UserAnswer,
			CorrectAnswer: in.Question.CorrectAnswer,
			IsCorrect:     correct,
			TimeSpentMs:   in.TimeSpentMs,
		})
		if err != nil {
			return fmt.Errorf("append answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// FinishSession closes a session, tallying the recorded answers. Sessions
// the user quit mid-way end up ABANDONED but keep their recorded answers.
func (s *Service) FinishSession(ctx context.Context, in FinishSessionInput) (*domain.QuizSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if session.Status != domain.SessionStatusActive {
		return nil, fmt.Errorf("session %s: %w", session.ID, domain.ErrConflict)
	}

	answers, err := s.sessions.ListAnswers(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}

	status := domain.SessionStatusCompleted
	if in.Abandoned {
		status = domain.SessionStatusAbandoned
	}

	finished, err := s.sessions.Complete(ctx, session.ID, correct, in.TimeSpentMs, status)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	s.log.InfoContext(ctx, "quiz session finished",
		"session_id", finished.ID,
		"status", status,
		"correct", correct,
		"total", finished.TotalQuestions,
	)
	return finished, nil
}

// History returns the user's completed sessions, newest first.
func (s *Service) History(ctx context.Context) ([]domain.QuizSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sessions, err := s.sessions.ListCompleted(ctx, userID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// SessionAnswers returns a session's answers in play order.
func (s *Service) SessionAnswers(ctx context.Context, sessionID uuid.UUID) ([]domain.QuizAnswer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session.UserID != userID {
		return nil, domain.ErrNotFound
	}

	answers, err := s.sessions.ListAnswers(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return answers, nil
}

package quiz

import (
	"math"

	"github.com/cinevocab/backend/internal/domain"
)

// Score grades a completed quiz. Answers are compared to the correct answer
// by exact string equality; extra answers beyond the question list are
// ignored and missing answers count as incorrect. Pure summary, no side
// effects.
func Score(questions []domain.Question, answers []string) domain.QuizScore {
	score := domain.QuizScore{
		Total:   len(questions),
		Results: make([]domain.QuestionResult, 0, len(questions)),
	}

	for i, q := range questions {
		var answer string
		if i < len(answers) {
			answer = answers[i]
		}

		correct := answer == q.CorrectAnswer
		if correct {
			score.Correct++
		} else {
			score.Incorrect++
		}
		score.Results = append(score.Results, domain.QuestionResult{
			Index:         i,
			VocabularyID:  q.VocabularyID,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     correct,
		})
	}

	if score.Total > 0 {
		score.Percentage = int(math.Round(float64(score.Correct) / float64(score.Total) * 100))
	}
	return score
}

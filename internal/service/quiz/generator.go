package quiz

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

// BlankMarker replaces the target word in a cloze sentence.
const BlankMarker = "_____"

// Generate builds a randomized multiple-choice quiz from the vocabulary
// pool matching the filter. Items that cannot yield four distinct options
// are skipped, so the result may be shorter than requested; an empty pool
// yields an empty quiz.
func (s *Service) Generate(ctx context.Context, in GenerateInput) ([]domain.Question, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	count := in.Count
	if count == 0 {
		count = s.cfg.DefaultQuestionCount
	}
	if count > s.cfg.MaxQuestionCount {
		count = s.cfg.MaxQuestionCount
	}

	allowed := in.AllowedTypes
	if len(allowed) == 0 {
		allowed = domain.AllQuestionTypes()
	}

	pool, err := s.vocabulary.List(ctx, domain.VocabularyFilter{
		MovieID: in.MovieID,
		Level:   in.Level,
	})
	if err != nil {
		return nil, fmt.Errorf("load vocabulary pool: %w", err)
	}
	if len(pool) == 0 {
		return []domain.Question{}, nil
	}

	shuffled := make([]domain.Vocabulary, len(pool))
	copy(shuffled, pool)
	shuffle(s.cfg.Rand, shuffled)

	if count > len(shuffled) {
		count = len(shuffled)
	}

	questions := make([]domain.Question, 0, count)
	for _, target := range shuffled[:count] {
		qtype := allowed[s.cfg.Rand.Intn(len(allowed))]

		q, err := s.buildQuestion(pool, target, qtype, false)
		if errors.Is(err, errInsufficientDistractors) {
			s.log.DebugContext(ctx, "question skipped",
				"vocabulary_id", target.ID,
				"word", target.Word,
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, nil
}

// buildQuestion assembles one question. In practice mode the question also
// carries the part-of-speech hint and the movie line as an explanation.
func (s *Service) buildQuestion(pool []domain.Vocabulary, target domain.Vocabulary, qtype domain.QuestionType, practice bool) (*domain.Question, error) {
	// Cloze needs the movie line; without it the shape degrades to a
	// plain word-to-meaning question.
	if qtype == domain.QuestionTypeClozeToMeaning && !target.HasOriginalSentence() {
		qtype = domain.QuestionTypeWordToMeaning
	}

	var text, correct string
	switch qtype {
	case domain.QuestionTypeWordToMeaning:
		text = target.Word
		correct = target.Definition
	case domain.QuestionTypeMeaningToWord:
		text = target.Definition
		correct = target.Word
	case domain.QuestionTypeClozeToMeaning:
		text = blankOut(*target.OriginalSentence, target.Word)
		correct = target.Definition
	default:
		return nil, domain.NewValidationError("question_type", "unknown question type")
	}

	options, err := s.drawOptions(pool, target, qtype, correct)
	if err != nil {
		return nil, err
	}

	q := &domain.Question{
		VocabularyID:  target.ID,
		Type:          qtype,
		Text:          text,
		Options:       options,
		CorrectAnswer: correct,
		Word:          target.Word,
		Level:         target.Level,
	}

	if practice {
		if target.PartOfSpeech != nil {
			hint := target.PartOfSpeech.String()
			q.Hint = &hint
		}
		if qtype != domain.QuestionTypeClozeToMeaning && target.HasOriginalSentence() {
			q.Explanation = target.OriginalSentence
		}
	}
	return q, nil
}

// drawOptions assembles the four shuffled options: the correct answer plus
// three distractor texts. Colliding option texts trigger a fresh draw; after
// the configured retries the question counts as unbuildable.
func (s *Service) drawOptions(pool []domain.Vocabulary, target domain.Vocabulary, qtype domain.QuestionType, correct string) ([]string, error) {
	for attempt := 0; attempt < s.cfg.DistractorRetries; attempt++ {
		picked, err := pickDistractors(s.cfg.Rand, pool, target, domain.OptionCount-1)
		if err != nil {
			return nil, err
		}

		options := make([]string, 0, domain.OptionCount)
		options = append(options, correct)
		for _, d := range picked {
			options = append(options, optionText(d, qtype))
		}
		if !distinct(options) {
			continue
		}

		shuffle(s.cfg.Rand, options)
		return options, nil
	}
	return nil, errInsufficientDistractors
}

// optionText is the answer text a pool item contributes for a question
// shape: words for MEANING_TO_WORD, definitions otherwise.
func optionText(v domain.Vocabulary, qtype domain.QuestionType) string {
	if qtype == domain.QuestionTypeMeaningToWord {
		return v.Word
	}
	return v.Definition
}

func distinct(options []string) bool {
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if _, ok := seen[opt]; ok {
			return false
		}
		seen[opt] = struct{}{}
	}
	return true
}

// blankOut replaces every case-insensitive whole-word occurrence of word in
// the sentence with the blank marker. If the word does not occur, the
// sentence is returned unchanged.
func blankOut(sentence, word string) string {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return sentence
	}
	return re.ReplaceAllString(sentence, BlankMarker)
}

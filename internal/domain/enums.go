package domain

// Level represents the difficulty tier of a vocabulary item.
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
)

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechPhrase       PartOfSpeech = "PHRASE"
	PartOfSpeechIdiom        PartOfSpeech = "IDIOM"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechPhrase, PartOfSpeechIdiom, PartOfSpeechOther:
		return true
	}
	return false
}

// QuestionType represents the shape of a multiple-choice question.
type QuestionType string

const (
	// QuestionTypeWordToMeaning shows the word; options are definitions.
	QuestionTypeWordToMeaning QuestionType = "WORD_TO_MEANING"
	// QuestionTypeMeaningToWord shows the definition; options are words.
	QuestionTypeMeaningToWord QuestionType = "MEANING_TO_WORD"
	// QuestionTypeClozeToMeaning shows the example sentence with the word
	// blanked out; options are definitions.
	QuestionTypeClozeToMeaning QuestionType = "CLOZE_TO_MEANING"
)

func (q QuestionType) String() string { return string(q) }

func (q QuestionType) IsValid() bool {
	switch q {
	case QuestionTypeWordToMeaning, QuestionTypeMeaningToWord, QuestionTypeClozeToMeaning:
		return true
	}
	return false
}

// AllQuestionTypes returns the three supported question shapes.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{
		QuestionTypeWordToMeaning,
		QuestionTypeMeaningToWord,
		QuestionTypeClozeToMeaning,
	}
}

// MasteryTier is the human-readable tier derived from a mastery level.
type MasteryTier string

const (
	MasteryTierNotStarted   MasteryTier = "NOT_STARTED"
	MasteryTierBeginner     MasteryTier = "BEGINNER"
	MasteryTierIntermediate MasteryTier = "INTERMEDIATE"
	MasteryTierAdvanced     MasteryTier = "ADVANCED"
	MasteryTierMastered     MasteryTier = "MASTERED"
)

func (t MasteryTier) String() string { return string(t) }

func (t MasteryTier) IsValid() bool {
	switch t {
	case MasteryTierNotStarted, MasteryTierBeginner, MasteryTierIntermediate,
		MasteryTierAdvanced, MasteryTierMastered:
		return true
	}
	return false
}

// SessionStatus represents the state of a quiz session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusAbandoned SessionStatus = "ABANDONED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusCompleted, SessionStatusAbandoned:
		return true
	}
	return false
}

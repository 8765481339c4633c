package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vocabulary is a single AI-extracted vocabulary note. Items are created by
// the ingestion pipeline and are read-only from this service's perspective.
type Vocabulary struct {
	ID               uuid.UUID
	Word             string
	PartOfSpeech     *PartOfSpeech
	Definition       string
	Level            Level
	OriginalSentence *string
	ExampleSentences []string
	MovieID          *uuid.UUID
	CreatedAt        time.Time
}

// HasOriginalSentence reports whether the item carries a usable source
// sentence for cloze questions.
func (v *Vocabulary) HasOriginalSentence() bool {
	return v.OriginalSentence != nil && *v.OriginalSentence != ""
}

// VocabularyFilter contains filtering parameters for vocabulary pool fetches.
type VocabularyFilter struct {
	MovieID *uuid.UUID
	Level   *Level
	Limit   int
}

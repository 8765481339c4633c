package quiz

import (
	"errors"
	"math/rand"

	"github.com/cinevocab/backend/internal/domain"
)

// errInsufficientDistractors signals that a question cannot be built from
// the current pool; the generator skips the item.
var errInsufficientDistractors = errors.New("insufficient distractors")

// pickDistractors draws n items from the pool to serve as wrong options for
// the target. Items sharing the target's level are preferred; if fewer than
// n exist, the draw falls back to the full pool minus the target.
func pickDistractors(rng *rand.Rand, pool []domain.Vocabulary, target domain.Vocabulary, n int) ([]domain.Vocabulary, error) {
	sameLevel := make([]domain.Vocabulary, 0, len(pool))
	others := make([]domain.Vocabulary, 0, len(pool))
	for _, v := range pool {
		if v.ID == target.ID {
			continue
		}
		if v.Level == target.Level {
			sameLevel = append(sameLevel, v)
		}
		others = append(others, v)
	}

	candidates := sameLevel
	if len(candidates) < n {
		candidates = others
	}
	if len(candidates) < n {
		return nil, errInsufficientDistractors
	}

	shuffled := make([]domain.Vocabulary, len(candidates))
	copy(shuffled, candidates)
	shuffle(rng, shuffled)
	return shuffled[:n], nil
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

package study

import (
	"math"

	"github.com/cinevocab/backend/internal/domain"
)

// Weighted answer counts: a correct answer moves the score more than an
// incorrect one drags it down.
const (
	correctWeight   = 1.5
	incorrectWeight = 0.5
)

// Score computes the mastery level from lifetime answer counts.
//
//	score = (c * 1.5) / (c * 1.5 + i * 0.5)
//
// A word with no answers yet scores 0. The result is clamped to [0, 1].
func Score(correct, incorrect int) float64 {
	if correct <= 0 && incorrect <= 0 {
		return 0
	}
	weighted := float64(correct) * correctWeight
	total := weighted + float64(incorrect)*incorrectWeight
	if total <= 0 {
		return 0
	}
	return clampScore(weighted / total)
}

// TierFor maps a mastery score to its display tier.
func TierFor(score float64) domain.MasteryTier {
	switch {
	case score <= 0:
		return domain.MasteryTierNotStarted
	case score < 0.3:
		return domain.MasteryTierBeginner
	case score < 0.6:
		return domain.MasteryTierIntermediate
	case score < 0.8:
		return domain.MasteryTierAdvanced
	default:
		return domain.MasteryTierMastered
	}
}

// NeededCorrect returns how many consecutive correct answers it takes to
// lift the score from the given counts to the threshold. Returns 0 if the
// threshold is already met and -1 if it is unreachable (threshold >= 1 with
// misses on record).
func NeededCorrect(correct, incorrect int, threshold float64) int {
	if Score(correct, incorrect) >= threshold {
		return 0
	}
	if threshold >= 1 && incorrect > 0 {
		return -1
	}
	if incorrect == 0 {
		// With no misses the first correct answer scores 1.
		return 1
	}

	// Solve (c+n)*1.5 / ((c+n)*1.5 + i*0.5) >= t for the smallest n. The
	// closed form carries float error, so settle on the exact boundary by
	// re-checking against Score.
	need := threshold * float64(incorrect) * incorrectWeight / (correctWeight * (1 - threshold))
	n := int(math.Ceil(need)) - correct
	if n < 1 {
		n = 1
	}
	for n > 1 && Score(correct+n-1, incorrect) >= threshold {
		n--
	}
	for Score(correct+n, incorrect) < threshold {
		n++
	}
	return n
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

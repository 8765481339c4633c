// Package leitner implements the Leitner box spaced repetition scheduler.
// A word climbs one box per correct answer and falls back to box 0 on any
// miss; the box index selects the review interval in days.
package leitner

import (
	"time"

	"github.com/cinevocab/backend/internal/domain"
)

// DefaultIntervals maps each box to its review interval in days.
var DefaultIntervals = [domain.MaxBox + 1]int{1, 2, 4, 7, 14, 30}

// Result is the scheduling outcome of a single review.
type Result struct {
	Box          int
	IntervalDays int
	NextReview   time.Time
}

// NextBox returns the box a word moves to after an answer.
//
//	correct:   box + 1, capped at MaxBox
//	incorrect: back to box 0
//
// Out-of-range input boxes are clamped before the move.
func NextBox(box int, correct bool) int {
	if !correct {
		return domain.MinBox
	}
	box = clampBox(box)
	if box >= domain.MaxBox {
		return domain.MaxBox
	}
	return box + 1
}

// Interval returns the review interval in days for a box.
func Interval(intervals [domain.MaxBox + 1]int, box int) int {
	return intervals[clampBox(box)]
}

// Advance applies one answer to the current box and schedules the next
// review at now plus the new box's interval.
func Advance(intervals [domain.MaxBox + 1]int, box int, correct bool, now time.Time) Result {
	next := NextBox(box, correct)
	days := Interval(intervals, next)
	return Result{
		Box:          next,
		IntervalDays: days,
		NextReview:   now.AddDate(0, 0, days),
	}
}

func clampBox(box int) int {
	if box < domain.MinBox {
		return domain.MinBox
	}
	if box > domain.MaxBox {
		return domain.MaxBox
	}
	return box
}

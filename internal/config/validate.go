package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	// env-required only checks that the variable is set, so an empty DSN
	// slips past cleanenv.
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database: dsn must not be empty")
	}
	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}
	return nil
}

func (q *QuizConfig) validate() error {
	if q.DefaultQuestionCount <= 0 {
		return fmt.Errorf("default_question_count must be > 0 (got %d)", q.DefaultQuestionCount)
	}
	if q.MaxQuestionCount < q.DefaultQuestionCount {
		return fmt.Errorf("max_question_count must be >= default_question_count (got %d < %d)",
			q.MaxQuestionCount, q.DefaultQuestionCount)
	}
	if q.DistractorRetries < 0 {
		return fmt.Errorf("distractor_retries must be >= 0 (got %d)", q.DistractorRetries)
	}
	if q.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0 (got %d)", q.HistoryLimit)
	}
	return nil
}

func (s *SRSConfig) validate() error {
	if s.MasteredThreshold <= 0 || s.MasteredThreshold > 1 {
		return fmt.Errorf("mastered_threshold must be in (0,1] (got %v)", s.MasteredThreshold)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	intervals, err := ParseBoxIntervals(s.BoxIntervalsRaw)
	if err != nil {
		return fmt.Errorf("box_intervals: %w", err)
	}
	s.BoxIntervals = intervals

	return nil
}

// Location returns the configured timezone. Validate must have succeeded;
// an unparseable value falls back to UTC.
func (s *SRSConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseBoxIntervals parses a comma-separated string of six day counts
// (e.g. "1,2,4,7,14,30") into the per-box interval table. Intervals must be
// positive and strictly ascending.
func ParseBoxIntervals(raw string) ([6]int, error) {
	var intervals [6]int

	parts := strings.Split(raw, ",")
	if len(parts) != len(intervals) {
		return intervals, fmt.Errorf("expected %d values, got %d", len(intervals), len(parts))
	}

	for i, p := range parts {
		days, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return intervals, fmt.Errorf("invalid interval %q: %w", p, err)
		}
		if days <= 0 {
			return intervals, fmt.Errorf("interval for box %d must be > 0 (got %d)", i, days)
		}
		if i > 0 && days <= intervals[i-1] {
			return intervals, fmt.Errorf("intervals must be strictly ascending (box %d: %d <= %d)", i, days, intervals[i-1])
		}
		intervals[i] = days
	}

	return intervals, nil
}

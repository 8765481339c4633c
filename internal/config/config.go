package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Quiz     QuizConfig     `yaml:"quiz"`
	SRS      SRSConfig      `yaml:"srs"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// QuizConfig holds quiz generation settings.
type QuizConfig struct {
	DefaultQuestionCount int `yaml:"default_question_count" env:"QUIZ_DEFAULT_QUESTION_COUNT" env-default:"10"`
	MaxQuestionCount     int `yaml:"max_question_count"     env:"QUIZ_MAX_QUESTION_COUNT"     env-default:"50"`
	// DistractorRetries bounds how often a question is re-drawn when the
	// picked distractors collide with the correct answer text.
	DistractorRetries int `yaml:"distractor_retries" env:"QUIZ_DISTRACTOR_RETRIES" env-default:"3"`
	HistoryLimit      int `yaml:"history_limit"      env:"QUIZ_HISTORY_LIMIT"      env-default:"20"`
}

// SRSConfig holds Leitner spaced-repetition parameters.
type SRSConfig struct {
	// BoxIntervalsRaw is a comma-separated list of six review intervals in
	// days, one per box 0..5.
	BoxIntervalsRaw   string  `yaml:"box_intervals"      env:"SRS_BOX_INTERVALS"      env-default:"1,2,4,7,14,30"`
	MasteredThreshold float64 `yaml:"mastered_threshold" env:"SRS_MASTERED_THRESHOLD" env-default:"0.8"`
	Timezone          string  `yaml:"timezone"           env:"SRS_TIMEZONE"           env-default:"UTC"`

	// BoxIntervals is parsed from BoxIntervalsRaw during validation.
	BoxIntervals [6]int `yaml:"-" env:"-"`
}

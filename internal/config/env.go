package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env holds defaults for the quizbank command, read from the environment.
// Command-line flags take precedence over every field.
type Env struct {
	File     string `env:"QUIZBANK_FILE" envDefault:"questions.yml"`
	Format   string `env:"QUIZBANK_FORMAT"`
	LogLevel string `env:"QUIZBANK_LOG_LEVEL" envDefault:"warn"`
	LogMode  string `env:"QUIZBANK_LOG_MODE" envDefault:"console"`
	NoColor  string `env:"NO_COLOR"`
}

// ColorDisabled reports whether NO_COLOR is set. Any non-empty value counts.
func (e Env) ColorDisabled() bool {
	return e.NoColor != ""
}

// FromEnv parses Env from the process environment.
func FromEnv() (Env, error) {
	return parse(env.Options{})
}

// FromMap parses Env from the given variables instead of the process environment.
func FromMap(vars map[string]string) (Env, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogMode = strings.ToLower(strings.TrimSpace(cfg.LogMode))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogMode {
	case "console", "json":
	default:
		return Env{}, fmt.Errorf("parse env: invalid QUIZBANK_LOG_MODE %q (expected console|json)", cfg.LogMode)
	}
	return cfg, nil
}

// Package config loads golox's environment-variable-driven settings: the
// REPL prompt and clock()'s time unit, configurable the way most Go CLIs
// layer env-based config on top of flags, without wiring every knob
// through the flag struct.
package config

import "github.com/caarlos0/env/v6"

// Config holds the environment-derived settings the CLI and evaluator read
// at startup.
type Config struct {
	// Prompt is printed before each REPL line.
	Prompt string `env:"GOLOX_PROMPT" envDefault:"> "`

	// ClockUnit selects what unit clock() reports wall-clock time in:
	// "s" for seconds (float, fractional), "ms" for milliseconds.
	ClockUnit string `env:"GOLOX_CLOCK_UNIT" envDefault:"ms"`
}

// Load reads Config from the process environment, falling back to the
// struct tag defaults for anything unset.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

package config

import (
	"errors"
	"slices"
	"strings"

	"github.com/dshills/wsjump/internal/input"
	"github.com/dshills/wsjump/internal/motion"
)

// Log levels accepted in [log] level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds all settings.
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Motion MotionConfig `toml:"motion" yaml:"motion"`
	Keymap KeymapConfig `toml:"keymap" yaml:"keymap"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// Prefix is prepended to every log line.
	Prefix string `toml:"prefix" yaml:"prefix"`
}

// MotionConfig configures the whitespace motions.
type MotionConfig struct {
	EndOfDocumentNotice   string `toml:"end_of_document_notice" yaml:"end_of_document_notice"`
	StartOfDocumentNotice string `toml:"start_of_document_notice" yaml:"start_of_document_notice"`
}

// KeymapConfig binds keys for the interactive mode.
type KeymapConfig struct {
	NextWhitespace     string `toml:"next_whitespace" yaml:"next_whitespace"`
	PreviousWhitespace string `toml:"previous_whitespace" yaml:"previous_whitespace"`
	Quit               string `toml:"quit" yaml:"quit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Prefix: "wsjump",
		},
		Motion: MotionConfig{
			EndOfDocumentNotice:   motion.DefaultEndOfDocumentNotice,
			StartOfDocumentNotice: motion.DefaultStartOfDocumentNotice,
		},
		Keymap: KeymapConfig{
			NextWhitespace:     input.DefaultNextWhitespaceKey,
			PreviousWhitespace: input.DefaultPreviousWhitespaceKey,
			Quit:               input.DefaultQuitKey,
		},
	}
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	level := strings.ToLower(c.Log.Level)
	if !slices.Contains(logLevels, level) {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: "must be one of " + strings.Join(logLevels, ", "),
		})
	}

	if c.Motion.EndOfDocumentNotice == "" {
		errs = append(errs, &ValidationError{Field: "motion.end_of_document_notice", Value: "", Message: "must not be empty"})
	}
	if c.Motion.StartOfDocumentNotice == "" {
		errs = append(errs, &ValidationError{Field: "motion.start_of_document_notice", Value: "", Message: "must not be empty"})
	}

	seen := make(map[string]string)
	for _, b := range c.Keymap.bindings() {
		key, err := input.ParseKey(b.spec)
		if err != nil {
			errs = append(errs, &ValidationError{Field: b.field, Value: b.spec, Message: err.Error()})
			continue
		}
		if other, dup := seen[key.String()]; dup {
			errs = append(errs, &ValidationError{Field: b.field, Value: b.spec, Message: "already bound by " + other})
			continue
		}
		seen[key.String()] = b.field
	}

	return errors.Join(errs...)
}

// BuildKeymap builds the key bindings described by the [keymap] section.
func (c *Config) BuildKeymap() (*input.Keymap, error) {
	km := input.NewKeymap()
	for _, b := range c.Keymap.bindings() {
		if err := km.Bind(b.spec, b.action); err != nil {
			return nil, &ValidationError{Field: b.field, Value: b.spec, Message: err.Error()}
		}
	}
	return km, nil
}

// MotionOptions returns the engine options for the [motion] section.
func (c *Config) MotionOptions() []motion.Option {
	return []motion.Option{
		motion.WithNotices(c.Motion.EndOfDocumentNotice, c.Motion.StartOfDocumentNotice),
	}
}

type keyBinding struct {
	field  string
	spec   string
	action string
}

func (k KeymapConfig) bindings() []keyBinding {
	return []keyBinding{
		{"keymap.next_whitespace", k.NextWhitespace, input.ActionNextWhitespace},
		{"keymap.previous_whitespace", k.PreviousWhitespace, input.ActionPreviousWhitespace},
		{"keymap.quit", k.Quit, input.ActionQuit},
	}
}

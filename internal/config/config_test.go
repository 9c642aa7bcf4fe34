package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/wsjump/internal/engine/buffer"
	"github.com/dshills/wsjump/internal/input"
	"github.com/dshills/wsjump/internal/motion"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Keymap.NextWhitespace != input.DefaultNextWhitespaceKey {
		t.Errorf("Keymap.NextWhitespace = %q", cfg.Keymap.NextWhitespace)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"empty end notice", func(c *Config) { c.Motion.EndOfDocumentNotice = "" }, "motion.end_of_document_notice"},
		{"empty start notice", func(c *Config) { c.Motion.StartOfDocumentNotice = "" }, "motion.start_of_document_notice"},
		{"bad key", func(c *Config) { c.Keymap.Quit = "Hyper+q" }, "keymap.quit"},
		{"duplicate key", func(c *Config) { c.Keymap.PreviousWhitespace = "<A-Right>" }, "keymap.previous_whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("ValidationError field = %v, want %s", ve, tt.field)
			}
		})
	}
}

func TestValidateLevelCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "DEBUG"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "nope"
	cfg.Keymap.Quit = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "log.level") || !strings.Contains(msg, "keymap.quit") {
		t.Errorf("expected both problems in %q", msg)
	}
}

func TestBuildKeymap(t *testing.T) {
	cfg := Default()
	cfg.Keymap.NextWhitespace = "w"

	km, err := cfg.BuildKeymap()
	if err != nil {
		t.Fatal(err)
	}
	if action, ok := km.Lookup(input.MustParseKey("w")); !ok || action != input.ActionNextWhitespace {
		t.Errorf("Lookup(w) = %q, %v", action, ok)
	}
	if _, ok := km.Lookup(input.MustParseKey("Alt+Right")); ok {
		t.Error("default binding should be replaced")
	}

	cfg.Keymap.Quit = "Hyper+q"
	if _, err := cfg.BuildKeymap(); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("BuildKeymap() = %v, want ErrValidationFailed", err)
	}
}

func TestMotionOptions(t *testing.T) {
	cfg := Default()
	cfg.Motion.EndOfDocumentNotice = "bottom"

	e := motion.New(cfg.MotionOptions()...)
	out, err := e.Target(buffer.NewBufferFromString("x"), buffer.Position{Line: 0, Character: 1}, motion.Forward)
	if err != nil {
		t.Fatal(err)
	}
	if out.Notice != "bottom" {
		t.Errorf("Notice = %q, want bottom", out.Notice)
	}
}

package input

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"w", "w"},
		{"W", "W"},
		{"+", "+"},
		{"Right", "Right"},
		{"right", "Right"},
		{"Alt+Right", "Alt+Right"},
		{"alt+right", "Alt+Right"},
		{"Option+Left", "Alt+Left"},
		{"Shift+Ctrl+Left", "Ctrl+Shift+Left"},
		{"Ctrl+Q", "Ctrl+q"},
		{"Ctrl++", "Ctrl++"},
		{"<A-Right>", "Alt+Right"},
		{"<C-q>", "Ctrl+q"},
		{"<CR>", "Enter"},
		{"<Esc>", "Esc"},
		{"<C-S-Left>", "Ctrl+Shift+Left"},
		{"pagedown", "PgDn"},
		{"  space ", "Space"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			k, err := ParseKey(tt.spec)
			if err != nil {
				t.Fatalf("ParseKey(%q) error: %v", tt.spec, err)
			}
			if got := k.String(); got != tt.want {
				t.Errorf("ParseKey(%q) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseKeyErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptyKey},
		{"   ", ErrEmptyKey},
		{"Hyper+x", ErrInvalidKey},
		{"<X-a>", ErrInvalidKey},
		{"notakey", ErrInvalidKey},
		{"Alt+", ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseKey(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseKey(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestKeyIsRune(t *testing.T) {
	if !MustParseKey("w").IsRune() {
		t.Error("w should be a rune key")
	}
	if MustParseKey("Right").IsRune() {
		t.Error("Right should not be a rune key")
	}
}

func TestMustParseKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseKey("")
}

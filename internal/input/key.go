package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptyKey   = errors.New("empty key specification")
	ErrInvalidKey = errors.New("invalid key specification")
)

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns modifiers joined in canonical order, e.g. "Ctrl+Alt".
func (m Modifier) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// Key is a normalized key press.
// Name is either a special key name ("Right", "Enter") or a single character.
type Key struct {
	Mods Modifier
	Name string
}

// String returns the canonical spelling of the key.
func (k Key) String() string {
	if k.Mods == ModNone {
		return k.Name
	}
	return k.Mods.String() + "+" + k.Name
}

// IsRune returns true if the key is a single printable character.
func (k Key) IsRune() bool {
	return utf8.RuneCountInString(k.Name) == 1
}

// specialKeys maps lower-case names and aliases to canonical key names.
var specialKeys = map[string]string{
	"enter":     "Enter",
	"return":    "Enter",
	"cr":        "Enter",
	"esc":       "Esc",
	"escape":    "Esc",
	"tab":       "Tab",
	"backspace": "Backspace",
	"bs":        "Backspace",
	"delete":    "Delete",
	"del":       "Delete",
	"insert":    "Insert",
	"ins":       "Insert",
	"space":     "Space",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PgUp",
	"pgup":      "PgUp",
	"pagedown":  "PgDn",
	"pgdn":      "PgDn",
}

// ParseKey parses a key specification into a Key.
func ParseKey(spec string) (Key, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Key{}, ErrEmptyKey
	}

	// Vim-style <...> notation
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// Modifier+key, but a lone "+" is a character
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKeyName(spec, ModNone)
}

// MustParseKey is like ParseKey but panics on error.
func MustParseKey(spec string) Key {
	k, err := ParseKey(spec)
	if err != nil {
		panic(err)
	}
	return k
}

func parseVimStyle(inner string) (Key, error) {
	parts := strings.Split(inner, "-")
	if len(parts) == 1 {
		return parseKeyName(parts[0], ModNone)
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods |= ModCtrl
		case "a", "m":
			mods |= ModAlt
		case "s":
			mods |= ModShift
		default:
			return Key{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidKey, p)
		}
	}
	return parseKeyName(parts[len(parts)-1], mods)
}

func parseModifierStyle(spec string) (Key, error) {
	// "Ctrl++" binds the plus key
	keyPart := spec[strings.LastIndex(spec, "+")+1:]
	modPart := strings.TrimSuffix(spec, "+"+keyPart)
	if keyPart == "" {
		keyPart = "+"
		modPart = strings.TrimSuffix(spec, "++")
	}

	var mods Modifier
	for _, p := range strings.Split(modPart, "+") {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "ctrl", "control":
			mods |= ModCtrl
		case "alt", "opt", "option", "meta":
			mods |= ModAlt
		case "shift":
			mods |= ModShift
		default:
			return Key{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidKey, p)
		}
	}
	return parseKeyName(keyPart, mods)
}

func parseKeyName(name string, mods Modifier) (Key, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		if mods != ModNone {
			return Key{}, fmt.Errorf("%w: missing key after modifiers", ErrInvalidKey)
		}
		return Key{}, ErrEmptyKey
	}

	if canon, ok := specialKeys[strings.ToLower(name)]; ok {
		return Key{Mods: mods, Name: canon}, nil
	}

	if utf8.RuneCountInString(name) != 1 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}

	// Letters with Ctrl are case-insensitive in terminals.
	if mods.Has(ModCtrl) {
		name = strings.ToLower(name)
	}
	return Key{Mods: mods, Name: name}, nil
}

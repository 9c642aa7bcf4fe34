package input

import (
	"fmt"
	"sort"
)

// Default key bindings.
const (
	DefaultNextWhitespaceKey     = "Alt+Right"
	DefaultPreviousWhitespaceKey = "Alt+Left"
	DefaultQuitKey               = "Ctrl+q"
)

// Binding maps a key to an action name.
type Binding struct {
	Key    Key
	Action string
}

// Keymap holds key bindings. It is not safe for concurrent mutation.
type Keymap struct {
	bindings map[string]Binding
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[string]Binding)}
}

// DefaultKeymap returns a keymap with the default bindings.
func DefaultKeymap() *Keymap {
	km := NewKeymap()
	km.bind(MustParseKey(DefaultNextWhitespaceKey), ActionNextWhitespace)
	km.bind(MustParseKey(DefaultPreviousWhitespaceKey), ActionPreviousWhitespace)
	km.bind(MustParseKey(DefaultQuitKey), ActionQuit)
	return km
}

// Bind parses spec and binds it to action, replacing any existing binding
// for the same key.
func (k *Keymap) Bind(spec, action string) error {
	if action == "" {
		return fmt.Errorf("binding %q: empty action", spec)
	}
	key, err := ParseKey(spec)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}
	k.bind(key, action)
	return nil
}

func (k *Keymap) bind(key Key, action string) {
	k.bindings[key.String()] = Binding{Key: key, Action: action}
}

// Unbind removes the binding for every key bound to action.
func (k *Keymap) Unbind(action string) {
	for name, b := range k.bindings {
		if b.Action == action {
			delete(k.bindings, name)
		}
	}
}

// Lookup returns the action bound to key.
func (k *Keymap) Lookup(key Key) (string, bool) {
	b, ok := k.bindings[key.String()]
	return b.Action, ok
}

// KeyFor returns the first key, in canonical order, bound to action.
func (k *Keymap) KeyFor(action string) (Key, bool) {
	for _, b := range k.Bindings() {
		if b.Action == action {
			return b.Key, true
		}
	}
	return Key{}, false
}

// Bindings returns all bindings sorted by canonical key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

package input

import "testing"

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()
	if km.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", km.Len())
	}

	tests := []struct {
		key    Key
		action string
	}{
		{Key{Mods: ModAlt, Name: "Right"}, ActionNextWhitespace},
		{Key{Mods: ModAlt, Name: "Left"}, ActionPreviousWhitespace},
		{Key{Mods: ModCtrl, Name: "q"}, ActionQuit},
	}
	for _, tt := range tests {
		got, ok := km.Lookup(tt.key)
		if !ok || got != tt.action {
			t.Errorf("Lookup(%s) = %q, %v; want %q", tt.key, got, ok, tt.action)
		}
	}

	if _, ok := km.Lookup(Key{Name: "Right"}); ok {
		t.Error("plain Right should not be bound")
	}
}

func TestKeymapBindReplaces(t *testing.T) {
	km := NewKeymap()
	if err := km.Bind("<A-w>", "a"); err != nil {
		t.Fatal(err)
	}
	if err := km.Bind("Alt+w", "b"); err != nil {
		t.Fatal(err)
	}
	if km.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", km.Len())
	}
	if got, _ := km.Lookup(MustParseKey("alt+w")); got != "b" {
		t.Errorf("Lookup = %q, want b", got)
	}
}

func TestKeymapBindErrors(t *testing.T) {
	km := NewKeymap()
	if err := km.Bind("Hyper+x", "a"); err == nil {
		t.Error("expected parse error")
	}
	if err := km.Bind("x", ""); err == nil {
		t.Error("expected empty action error")
	}
}

func TestKeymapUnbindAndKeyFor(t *testing.T) {
	km := DefaultKeymap()
	if err := km.Bind("w", ActionNextWhitespace); err != nil {
		t.Fatal(err)
	}

	k, ok := km.KeyFor(ActionNextWhitespace)
	if !ok || k.String() != "Alt+Right" {
		t.Errorf("KeyFor = %s, %v; want Alt+Right", k, ok)
	}

	km.Unbind(ActionNextWhitespace)
	if _, ok := km.KeyFor(ActionNextWhitespace); ok {
		t.Error("action still bound after Unbind")
	}
	if km.Len() != 2 {
		t.Errorf("Len() = %d, want 2", km.Len())
	}
}

func TestKeymapBindingsSorted(t *testing.T) {
	b := DefaultKeymap().Bindings()
	for i := 1; i < len(b); i++ {
		if b[i-1].Key.String() > b[i].Key.String() {
			t.Errorf("bindings not sorted: %s before %s", b[i-1].Key, b[i].Key)
		}
	}
}

func TestAction(t *testing.T) {
	a := NewAction(ActionNextWhitespace, SourceKeyboard)
	if a.Repeat() != 1 {
		t.Errorf("Repeat() = %d, want 1", a.Repeat())
	}
	if a.WithCount(0).Repeat() != 1 {
		t.Error("zero count should repeat once")
	}
	if a.WithCount(4).Repeat() != 4 {
		t.Error("count not applied")
	}
	if a.Namespace() != "cursor" {
		t.Errorf("Namespace() = %q, want cursor", a.Namespace())
	}
	if (Action{Name: "plain"}).Namespace() != "" {
		t.Error("name without dot has no namespace")
	}
	if SourceScript.String() != "script" {
		t.Errorf("SourceScript = %q", SourceScript.String())
	}
}

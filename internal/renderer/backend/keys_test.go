package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wsjump/internal/input"
)

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"alt right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModAlt), "Alt+Right"},
		{"alt left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModAlt), "Alt+Left"},
		{"meta right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModMeta), "Alt+Right"},
		{"plain right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "Right"},
		{"ctrl q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), "Ctrl+q"},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), "W"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt), "Alt+f"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "Space"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "Esc"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "Shift+Tab"},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "PgDn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyFromEvent(tt.ev)
			if !ok {
				t.Fatal("expected a key")
			}
			want := input.MustParseKey(tt.want)
			if got != want {
				t.Errorf("KeyFromEvent() = %s, want %s", got, want)
			}
		})
	}
}

func TestKeyFromEventUnmapped(t *testing.T) {
	if key, ok := KeyFromEvent(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Errorf("KeyFromEvent(F5) = %s, want no key", key)
	}
}

func TestKeyFromEventMatchesKeymap(t *testing.T) {
	km := input.DefaultKeymap()

	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModAlt), input.ActionNextWhitespace},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModAlt), input.ActionPreviousWhitespace},
		{tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), input.ActionQuit},
	}
	for _, tt := range tests {
		key, _ := KeyFromEvent(tt.ev)
		if action, ok := km.Lookup(key); !ok || action != tt.want {
			t.Errorf("Lookup(%s) = %q, %v; want %q", key, action, ok, tt.want)
		}
	}
}

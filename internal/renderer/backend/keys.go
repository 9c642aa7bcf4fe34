package backend

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wsjump/internal/input"
)

// namedKeys maps tcell keys to input key names.
var namedKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyEscape:     "Esc",
	tcell.KeyTab:        "Tab",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PgUp",
	tcell.KeyPgDn:       "PgDn",
}

// KeyFromEvent converts a tcell key event into the key spelling used by
// input.ParseKey. It returns false for keys with no such spelling.
func KeyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	mods := convertMods(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		// The rune already carries Shift.
		mods &^= input.ModShift
		if r == ' ' {
			return input.Key{Mods: mods, Name: "Space"}, true
		}
		if mods.Has(input.ModCtrl) {
			r = unicode.ToLower(r)
		}
		return input.Key{Mods: mods, Name: string(r)}, true

	case k == tcell.KeyBacktab:
		return input.Key{Mods: mods | input.ModShift, Name: "Tab"}, true

	case namedKeys[k] != "":
		return input.Key{Mods: mods, Name: namedKeys[k]}, true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		name := string(rune('a' + (k - tcell.KeyCtrlA)))
		return input.Key{Mods: (mods | input.ModCtrl) &^ input.ModShift, Name: name}, true

	default:
		return input.Key{}, false
	}
}

func convertMods(m tcell.ModMask) input.Modifier {
	var mods input.Modifier
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods |= input.ModAlt
	}
	return mods
}

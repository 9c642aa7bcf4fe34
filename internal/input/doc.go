// Package input turns key presses into editor actions.
//
// A key is written the way users write it in configuration files:
//
//   - Single character: "w", "W", "["
//   - Special keys: "Enter", "Esc", "Tab", "Left", "PgDn", "Space"
//   - With modifiers: "Alt+Right", "Ctrl+Shift+Left"
//   - Vim-style: "<A-Right>", "<C-q>", "<CR>"
//
// ParseKey normalizes every form to a Key whose String value is the
// canonical spelling, so "<A-Right>" and "alt+right" bind the same key.
//
// A Keymap maps canonical keys to action names. The names are dispatched by
// package dispatcher; the ones this editor defines are listed as Action*
// constants.
//
//	km := input.DefaultKeymap()
//	if action, ok := km.Lookup(input.Key{Mods: input.ModAlt, Name: "Right"}); ok {
//		dispatch(input.Action{Name: action, Count: 1})
//	}
package input

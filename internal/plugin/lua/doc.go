// Package lua runs Lua scripts against a motion host.
//
// A Runtime wraps a gopher-lua state with only the base, table, string and
// math libraries opened, and installs an editor table whose functions reach
// the document and the whitespace motions:
//
//	rt := lua.NewRuntime(host, disp, lua.WithTimeout(time.Second))
//	defer rt.Close()
//
//	err := rt.DoString(ctx, "jump", `
//	    local line, char = editor.next_whitespace(3)
//	    editor.notify(string.format("now at %d:%d", line, char))
//	`)
//
// Motions are dispatched as input actions with the Script source, so they
// go through the same handlers a key press does.
//
// # Editor API
//
//   - editor.next_whitespace([count]) -> line, character
//   - editor.previous_whitespace([count]) -> line, character
//   - editor.peek_next([count]) -> line, character, notice
//   - editor.peek_previous([count]) -> line, character, notice
//   - editor.cursor() -> line, character
//   - editor.set_cursor(line, character)
//   - editor.select(anchor_line, anchor_character, head_line, head_character)
//   - editor.line_count() -> n
//   - editor.line_length(line) -> n
//   - editor.line_text(line) -> string
//   - editor.notify(message)
//
// Lines and characters are 0-based, as everywhere else in wsjump.
//
// Host failures raise Lua errors. The Go caller receives a *ScriptError
// that matches ErrScript and, when a host call failed, the host's error.
package lua

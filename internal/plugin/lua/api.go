package lua

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/wsjump/internal/dispatcher/handler"
	cursorhandler "github.com/dshills/wsjump/internal/dispatcher/handlers/cursor"
	"github.com/dshills/wsjump/internal/engine/buffer"
	"github.com/dshills/wsjump/internal/input"
)

// selector is implemented by hosts that keep a selection.
type selector interface {
	Select(anchor, head buffer.Position) error
}

// editorModule implements the editor table.
type editorModule struct {
	rt *Runtime
}

func newEditorModule(rt *Runtime) *editorModule {
	return &editorModule{rt: rt}
}

// register installs the editor table as a global.
func (m *editorModule) register(L *lua.LState) {
	mod := L.NewTable()

	L.SetField(mod, "next_whitespace", L.NewFunction(m.nextWhitespace))
	L.SetField(mod, "previous_whitespace", L.NewFunction(m.previousWhitespace))
	L.SetField(mod, "peek_next", L.NewFunction(m.peekNext))
	L.SetField(mod, "peek_previous", L.NewFunction(m.peekPrevious))
	L.SetField(mod, "cursor", L.NewFunction(m.cursor))
	L.SetField(mod, "set_cursor", L.NewFunction(m.setCursor))
	L.SetField(mod, "select", L.NewFunction(m.selectRange))
	L.SetField(mod, "line_count", L.NewFunction(m.lineCount))
	L.SetField(mod, "line_length", L.NewFunction(m.lineLength))
	L.SetField(mod, "line_text", L.NewFunction(m.lineText))
	L.SetField(mod, "notify", L.NewFunction(m.notify))

	L.SetGlobal("editor", mod)
}

// next_whitespace([count]) -> line, character
func (m *editorModule) nextWhitespace(L *lua.LState) int {
	return m.motion(L, "next_whitespace", input.ActionNextWhitespace)
}

// previous_whitespace([count]) -> line, character
func (m *editorModule) previousWhitespace(L *lua.LState) int {
	return m.motion(L, "previous_whitespace", input.ActionPreviousWhitespace)
}

// peek_next([count]) -> line, character, notice
func (m *editorModule) peekNext(L *lua.LState) int {
	return m.peek(L, "peek_next", input.ActionNextWhitespace)
}

// peek_previous([count]) -> line, character, notice
func (m *editorModule) peekPrevious(L *lua.LState) int {
	return m.peek(L, "peek_previous", input.ActionPreviousWhitespace)
}

func (m *editorModule) motion(L *lua.LState, op, name string) int {
	if _, ok := m.dispatch(L, op, input.NewAction(name, input.SourceScript)); !ok {
		return 0
	}
	return m.pushCursor(L, op)
}

// peek reports where the motion would land without moving the cursor.
// notice is nil unless the motion stops at a document boundary.
func (m *editorModule) peek(L *lua.LState, op, name string) int {
	action := input.NewAction(name, input.SourceScript).WithArg(input.ArgDryRun, true)
	result, ok := m.dispatch(L, op, action)
	if !ok {
		return 0
	}

	line, _ := result.GetData(cursorhandler.DataLine)
	char, _ := result.GetData(cursorhandler.DataCharacter)
	l, lok := line.(int)
	c, cok := char.(int)
	if !lok || !cok {
		L.RaiseError("%s: no landing position in result", op)
		return 0
	}

	L.Push(lua.LNumber(l))
	L.Push(lua.LNumber(c))
	if result.Message != "" {
		L.Push(lua.LString(result.Message))
	} else {
		L.Push(lua.LNil)
	}
	return 3
}

// dispatch runs action with the optional count argument at index 1 and
// raises a Lua error unless it ran.
func (m *editorModule) dispatch(L *lua.LState, op string, action input.Action) (handler.Result, bool) {
	count := L.OptInt(1, 1)
	if count < 1 {
		L.ArgError(1, "count must be positive")
		return handler.Result{}, false
	}
	if m.rt.dispatcher == nil {
		L.RaiseError("%s: no dispatcher available", op)
		return handler.Result{}, false
	}

	result := m.rt.dispatcher.Dispatch(action.WithCount(count))
	if result.IsError() || result.IsCancelled() {
		err := result.Error
		if err == nil {
			err = errors.New(result.Message)
		}
		m.rt.raise(L, op, err)
		return handler.Result{}, false
	}
	return result, true
}

// cursor() -> line, character
func (m *editorModule) cursor(L *lua.LState) int {
	return m.pushCursor(L, "cursor")
}

func (m *editorModule) pushCursor(L *lua.LState, op string) int {
	pos, err := m.rt.host.Cursor()
	if err != nil {
		return m.rt.raise(L, op, err)
	}
	L.Push(lua.LNumber(pos.Line))
	L.Push(lua.LNumber(pos.Character))
	return 2
}

// set_cursor(line, character)
func (m *editorModule) setCursor(L *lua.LState) int {
	pos := buffer.Position{Line: L.CheckInt(1), Character: L.CheckInt(2)}
	if err := m.rt.host.SetCursor(pos); err != nil {
		return m.rt.raise(L, "set_cursor", err)
	}
	return 0
}

// select(anchor_line, anchor_character, head_line, head_character)
func (m *editorModule) selectRange(L *lua.LState) int {
	sel, ok := m.rt.host.(selector)
	if !ok {
		L.RaiseError("select: host has no selection")
		return 0
	}
	anchor := buffer.Position{Line: L.CheckInt(1), Character: L.CheckInt(2)}
	head := buffer.Position{Line: L.CheckInt(3), Character: L.CheckInt(4)}
	if err := sel.Select(anchor, head); err != nil {
		return m.rt.raise(L, "select", err)
	}
	return 0
}

// line_count() -> n
func (m *editorModule) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.rt.host.LineCount()))
	return 1
}

// line_length(line) -> n
func (m *editorModule) lineLength(L *lua.LState) int {
	n, err := m.rt.host.LineLength(L.CheckInt(1))
	if err != nil {
		return m.rt.raise(L, "line_length", err)
	}
	L.Push(lua.LNumber(n))
	return 1
}

// line_text(line) -> string
func (m *editorModule) lineText(L *lua.LState) int {
	line := L.CheckInt(1)
	n, err := m.rt.host.LineLength(line)
	if err != nil {
		return m.rt.raise(L, "line_text", err)
	}
	text, err := m.rt.host.TextRange(buffer.LineRange(line, 0, n))
	if err != nil {
		return m.rt.raise(L, "line_text", err)
	}
	L.Push(lua.LString(text))
	return 1
}

// notify(message)
func (m *editorModule) notify(L *lua.LState) int {
	m.rt.host.Notify(L.CheckString(1))
	return 0
}

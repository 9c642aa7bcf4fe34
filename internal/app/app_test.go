package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wsjump/internal/config"
	"github.com/dshills/wsjump/internal/dispatcher"
	"github.com/dshills/wsjump/internal/dispatcher/execctx"
	"github.com/dshills/wsjump/internal/engine/buffer"
	"github.com/dshills/wsjump/internal/input"
	"github.com/dshills/wsjump/internal/plugin/lua"
	"github.com/dshills/wsjump/internal/renderer/backend"
)

func newTestApp(t *testing.T, text string, cfg *config.Config) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	session := NewSession(buffer.NewBufferFromString(text), "test.txt", nil)
	a, err := New(cfg, session, WithOutput(&out))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a, &out
}

func TestRunBatch(t *testing.T) {
	a, out := newTestApp(t, "foo   bar\nbaz", nil)

	steps, err := ParseSteps("next,next,next*5,prev")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.RunBatch(steps); err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}

	want := "0:6\n0:9\n1:3\tAt EOF.\n1:0\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if got := a.Dispatcher().Metrics().TotalDispatches(); got != 4 {
		t.Errorf("TotalDispatches() = %d, want 4", got)
	}
}

func TestRunBatchAtStart(t *testing.T) {
	a, out := newTestApp(t, "abc", nil)

	if err := a.RunBatch([]Step{{input.ActionPreviousWhitespace, 1}}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "0:0\tAt start of file.\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunBatchCustomNotices(t *testing.T) {
	cfg := config.Default()
	cfg.Motion.EndOfDocumentNotice = "Bottom."
	a, out := newTestApp(t, "x", cfg)

	if err := a.RunBatch([]Step{{input.ActionNextWhitespace, 2}}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "0:1\tBottom.\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunBatchCommandLineSource(t *testing.T) {
	a, _ := newTestApp(t, "a b", nil)

	var sources []input.ActionSource
	a.Dispatcher().RegisterPreHook(dispatcher.PreDispatchFunc(func(action *input.Action, _ *execctx.ExecutionContext) bool {
		sources = append(sources, action.Source)
		return true
	}))

	if err := a.RunBatch([]Step{{input.ActionNextWhitespace, 1}}); err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 || sources[0] != input.SourceCommandLine {
		t.Errorf("sources = %v, want [CommandLine]", sources)
	}
}

func TestRunBatchStaleCursor(t *testing.T) {
	a, _ := newTestApp(t, "a b", nil)
	a.session.sel.Anchor = buffer.Position{Line: 4}
	a.session.sel.Head = buffer.Position{Line: 4}

	err := a.RunBatch([]Step{{input.ActionNextWhitespace, 1}})
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "apply" {
		t.Fatalf("RunBatch() error = %v, want apply OperationError", err)
	}
	if !errors.Is(err, buffer.ErrLineOutOfRange) {
		t.Errorf("error %v does not wrap ErrLineOutOfRange", err)
	}
}

func TestRunScript(t *testing.T) {
	a, out := newTestApp(t, "one two three", nil)

	path := filepath.Join(t.TempDir(), "jump.lua")
	script := `
		editor.next_whitespace(2)
		local l, c = editor.cursor()
		print("at", l, c)
	`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := a.RunScript(context.Background(), path); err != nil {
		t.Fatalf("RunScript() error = %v", err)
	}
	if out.String() != "at\t0\t8\n0:8\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunScriptErrors(t *testing.T) {
	a, _ := newTestApp(t, "x", nil)

	err := a.RunScript(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	if !errors.Is(err, lua.ErrScript) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing script error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.lua")
	if err := os.WriteFile(path, []byte(`editor.line_text(7)`), 0o644); err != nil {
		t.Fatal(err)
	}
	err = a.RunScript(context.Background(), path)
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Target != path {
		t.Errorf("RunScript() error = %v, want OperationError for %s", err, path)
	}
	if !errors.Is(err, buffer.ErrLineOutOfRange) {
		t.Errorf("error %v does not wrap ErrLineOutOfRange", err)
	}
}

func TestReport(t *testing.T) {
	a, out := newTestApp(t, "ab\ncd", nil)
	if err := a.session.SetCursor(buffer.Position{Line: 1, Character: 1}); err != nil {
		t.Fatal(err)
	}
	if err := a.Report(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "1:1\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestApplyConfig(t *testing.T) {
	a, _ := newTestApp(t, "a b", nil)

	cfg := config.Default()
	cfg.Keymap.NextWhitespace = "w"
	cfg.Log.Level = "debug"
	if err := a.ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	if action, ok := a.Keymap().Lookup(input.MustParseKey("w")); !ok || action != input.ActionNextWhitespace {
		t.Errorf("Lookup(w) = %q, %v", action, ok)
	}
	if a.Config() != cfg {
		t.Error("Config() not updated")
	}
	if a.logger.Level() != LogLevelDebug {
		t.Errorf("log level = %v, want DEBUG", a.logger.Level())
	}

	bad := config.Default()
	bad.Keymap.Quit = "Hyper+x"
	if err := a.ApplyConfig(bad); err == nil {
		t.Fatal("expected error for bad keymap")
	}
	if a.Config() != cfg {
		t.Error("failed ApplyConfig replaced the configuration")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Keymap.NextWhitespace = "<X-y>"
	session := NewSession(buffer.NewBuffer(), "", nil)
	if _, err := New(cfg, session); err == nil {
		t.Error("expected error")
	}
}

func newSimTerminal(t *testing.T) (*backend.Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := backend.NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(term.Shutdown)
	screen.SetSize(40, 5)
	return term, screen
}

func runInteractive(t *testing.T, a *App, term *backend.Terminal, ctx context.Context) error {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- a.RunInteractive(ctx, term) }()

	select {
	case err := <-errc:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("RunInteractive did not return")
		return nil
	}
}

func TestRunInteractive(t *testing.T) {
	a, _ := newTestApp(t, "foo   bar baz\nqux", nil)
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModAlt)
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModAlt)
	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModAlt)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	if err := runInteractive(t, a, term, context.Background()); err != nil {
		t.Fatalf("RunInteractive() error = %v", err)
	}

	pos, _ := a.session.Cursor()
	if pos != (buffer.Position{Line: 0, Character: 9}) {
		t.Errorf("cursor = %s, want (0:9)", pos)
	}
	if x, y, _ := screen.GetCursor(); x != 9 || y != 0 {
		t.Errorf("screen cursor = (%d,%d), want (9,0)", x, y)
	}
}

func TestRunInteractiveNotice(t *testing.T) {
	a, _ := newTestApp(t, "ab", nil)
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModAlt)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	if err := runInteractive(t, a, term, context.Background()); err != nil {
		t.Fatal(err)
	}

	cells, width, height := screen.GetContents()
	var status strings.Builder
	for x := 0; x < width; x++ {
		status.WriteString(string(cells[(height-1)*width+x].Runes))
	}
	if !strings.Contains(status.String(), "At start of file.") {
		t.Errorf("status bar = %q, want start-of-file notice", status.String())
	}
}

func TestRunInteractiveContextCancel(t *testing.T) {
	a, _ := newTestApp(t, "ab", nil)
	term, _ := newSimTerminal(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runInteractive(t, a, term, ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("RunInteractive() error = %v, want context.Canceled", err)
	}
}

func TestRunInteractiveLogsDispatchStats(t *testing.T) {
	logger, logs := newTestLogger(LogLevelDebug)
	cfg := config.Default()
	cfg.Log.Level = "debug"
	session := NewSession(buffer.NewBufferFromString("foo bar"), "test.txt", logger)
	a, err := New(cfg, session, WithLogger(logger), WithOutput(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModAlt)
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModAlt)
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModAlt)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	if err := runInteractive(t, a, term, context.Background()); err != nil {
		t.Fatal(err)
	}

	out := logs.String()
	for _, want := range []string{
		"dispatched 4 actions (1 no-op, 0 errors, 0 panics",
		"cursor.nextWhitespace: 3 dispatches, 1 no-op, 0 errors",
		"app.quit: 1 dispatches",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestRunContextCancelsDispatch(t *testing.T) {
	a, _ := newTestApp(t, "foo bar", nil)

	ctx, cancel := context.WithCancel(context.Background())
	release := a.bindContext(ctx)
	cancel()

	result := a.Dispatch(input.NewAction(input.ActionNextWhitespace, input.SourceScript))
	if !result.IsCancelled() || !errors.Is(result.Error, dispatcher.ErrActionCancelled) {
		t.Errorf("Dispatch() = %+v, want cancelled", result)
	}
	if pos, _ := a.session.Cursor(); pos != (buffer.Position{}) {
		t.Errorf("cursor moved to %s by a cancelled action", pos)
	}

	release()
	result = a.Dispatch(input.NewAction(input.ActionNextWhitespace, input.SourceScript))
	if !result.IsOK() {
		t.Errorf("Dispatch() after release = %+v, want OK", result)
	}
}

func TestWatchDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("foo   bar"), 0o644); err != nil {
		t.Fatal(err)
	}
	buf, err := OpenDocument(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	session := NewSession(buf, path, nil)
	a, err := New(nil, session, WithOutput(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if err := session.SetCursor(buffer.Position{Character: 9}); err != nil {
		t.Fatal(err)
	}

	posted := make(chan func(), 10)
	w, err := a.WatchDocument(path, func(fn func()) { posted <- fn })
	if err != nil {
		t.Fatalf("WatchDocument() error = %v", err)
	}
	defer w.Close()

	tmp := filepath.Join(filepath.Dir(path), "doc.txt.tmp")
	if err := os.WriteFile(tmp, []byte("ab cd"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for session.Notice() != "Reloaded from disk." {
		select {
		case fn := <-posted:
			fn()
		case <-deadline:
			t.Fatalf("document was not reloaded, notice %q", session.Notice())
		}
	}
	if n, _ := session.LineLength(0); n != 5 {
		t.Fatalf("line length after reload = %d, want 5", n)
	}
	if pos, _ := session.Cursor(); pos != (buffer.Position{Character: 5}) {
		t.Errorf("cursor = %s, want clamped to (0:5)", pos)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	for !strings.HasPrefix(session.Notice(), "Reload failed: ") {
		select {
		case fn := <-posted:
			fn()
		case <-deadline:
			t.Fatalf("missing reload failure, notice %q", session.Notice())
		}
	}
	if n, _ := session.LineLength(0); n != 5 {
		t.Errorf("failed reload changed the text, line length %d", n)
	}
}

func TestWatchDocumentMissingDirectory(t *testing.T) {
	a, _ := newTestApp(t, "", nil)
	missing := filepath.Join(t.TempDir(), "nope", "doc.txt")

	_, err := a.WatchDocument(missing, func(fn func()) { fn() })
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "watch document" {
		t.Errorf("WatchDocument() error = %v, want watch document OperationError", err)
	}
}

func TestWatchConfig(t *testing.T) {
	a, _ := newTestApp(t, "a b", nil)

	path := filepath.Join(t.TempDir(), "wsjump.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	posted := make(chan func(), 10)
	w, err := a.WatchConfig(path, func(fn func()) { posted <- fn })
	if err != nil {
		t.Fatalf("WatchConfig() error = %v", err)
	}
	defer w.Close()

	content := "[keymap]\nnext_whitespace = \"w\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case fn := <-posted:
			fn()
			if _, ok := a.Keymap().Lookup(input.MustParseKey("w")); ok {
				if a.session.Notice() != "Config reloaded." {
					t.Errorf("Notice() = %q", a.session.Notice())
				}
				return
			}
		case <-deadline:
			t.Fatal("config was not reloaded")
		}
	}
}

func TestWatchConfigUnsupported(t *testing.T) {
	a, _ := newTestApp(t, "", nil)
	_, err := a.WatchConfig("wsjump.ini", func(fn func()) { fn() })
	if !errors.Is(err, config.ErrUnsupportedFormat) {
		t.Errorf("WatchConfig() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestOpenDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo"), 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := OpenDocument(path, nil)
	if err != nil {
		t.Fatalf("OpenDocument() error = %v", err)
	}
	if buf.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", buf.LineCount())
	}
	if n, _ := buf.LineLength(0); n != 3 {
		t.Errorf("LineLength(0) = %d, want 3", n)
	}

	buf, err = OpenDocument(StdinPath, strings.NewReader("from stdin"))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := buf.LineLength(0); n != 10 {
		t.Errorf("stdin LineLength(0) = %d, want 10", n)
	}

	_, err = OpenDocument(filepath.Join(t.TempDir(), "missing.txt"), nil)
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open" || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenDocument(missing) error = %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	if DisplayName("-") != "[stdin]" || DisplayName("a.txt") != "a.txt" {
		t.Error("unexpected display names")
	}
}

func TestOperationError(t *testing.T) {
	err := NewOperationError("open", "a.txt", fs.ErrNotExist)
	if err.Error() != "open a.txt: file does not exist" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("Unwrap does not expose cause")
	}
	if got := NewOperationError("quit", "", nil).Error(); got != "quit" {
		t.Errorf("Error() = %q", got)
	}
}

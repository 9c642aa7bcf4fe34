package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/wsjump/internal/config"
	"github.com/dshills/wsjump/internal/dispatcher"
	"github.com/dshills/wsjump/internal/dispatcher/execctx"
	"github.com/dshills/wsjump/internal/dispatcher/handler"
	cursorhandler "github.com/dshills/wsjump/internal/dispatcher/handlers/cursor"
	"github.com/dshills/wsjump/internal/engine/buffer"
	"github.com/dshills/wsjump/internal/input"
	"github.com/dshills/wsjump/internal/motion"
	"github.com/dshills/wsjump/internal/plugin/lua"
)

// DataQuit marks the result of the quit action.
const DataQuit = "quit"

// App coordinates one session with the configured motions and front ends.
type App struct {
	mu sync.RWMutex

	cfg        *config.Config
	keymap     *input.Keymap
	engine     *motion.Engine
	dispatcher *dispatcher.Dispatcher
	session    *Session
	logger     *Logger
	out        io.Writer

	running atomic.Bool
	runCtx  atomic.Pointer[context.Context]
}

// Option configures an App.
type Option func(*App)

// WithOutput sets where batch and script results are written.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		if w != nil {
			a.out = w
		}
	}
}

// WithLogger sets the application logger.
func WithLogger(l *Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an App for session. A nil cfg uses config.Default().
func New(cfg *config.Config, session *Session, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		session:    session,
		dispatcher: dispatcher.New(dispatcher.DefaultConfig().WithMetrics()),
		logger:     NullLogger(),
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.dispatcher.SetLogger(a.logger.WithComponent("dispatcher"))
	a.dispatcher.SetHost(session, session.Name())
	a.dispatcher.RegisterNamespace(a.appNamespace())
	a.dispatcher.RegisterPreHook(dispatcher.PreDispatchFunc(a.checkRunContext))

	if err := a.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

// ApplyConfig switches to cfg: keymap, notices and log level.
// On error the previous configuration stays in effect.
func (a *App) ApplyConfig(cfg *config.Config) error {
	km, err := cfg.BuildKeymap()
	if err != nil {
		return NewOperationError("apply config", "keymap", err)
	}

	opts := append(cfg.MotionOptions(), motion.WithLogger(a.logger.WithComponent("motion")))
	engine := motion.New(opts...)

	a.mu.Lock()
	a.cfg = cfg
	a.keymap = km
	a.engine = engine
	a.mu.Unlock()

	a.dispatcher.RegisterNamespace(cursorhandler.NewWhitespaceHandler(engine))
	a.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	a.logger.Debug("config applied: %d key bindings", km.Len())
	return nil
}

func (a *App) appNamespace() handler.NamespaceHandler {
	ns := handler.NewBaseNamespaceHandler("app")
	ns.Register(input.ActionQuit, func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.SuccessWithData(DataQuit, true)
	})
	return ns
}

// bindContext ties dispatching to ctx until the returned function is called.
func (a *App) bindContext(ctx context.Context) func() {
	a.runCtx.Store(&ctx)
	return func() { a.runCtx.Store(nil) }
}

// checkRunContext cancels actions dispatched after the context of the
// running front end is done.
func (a *App) checkRunContext(action *input.Action, _ *execctx.ExecutionContext) bool {
	p := a.runCtx.Load()
	if p == nil {
		return true
	}
	if err := (*p).Err(); err != nil {
		a.logger.Debug("dropping %s: %v", action.Name, err)
		return false
	}
	return true
}

// Config returns the active configuration.
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// Keymap returns the active key bindings.
func (a *App) Keymap() *input.Keymap {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.keymap
}

// Session returns the session.
func (a *App) Session() *Session {
	return a.session
}

// Dispatcher returns the action dispatcher.
func (a *App) Dispatcher() *dispatcher.Dispatcher {
	return a.dispatcher
}

// Dispatch runs an action against the session.
func (a *App) Dispatch(action input.Action) handler.Result {
	result := a.dispatcher.Dispatch(action)
	if result.IsError() {
		a.logger.Warn("%s failed: %v", action.Name, result.Error)
	}
	return result
}

// RunBatch applies steps in order and writes "line:character" after each,
// followed by a tab and the notice when the step hit a document boundary.
func (a *App) RunBatch(steps []Step) error {
	for _, step := range steps {
		action := input.NewAction(step.Action, input.SourceCommandLine).WithCount(step.Count)
		result := a.Dispatch(action)
		if result.IsError() {
			return NewOperationError("apply", step.String(), result.Error)
		}

		pos, err := a.session.Cursor()
		if err != nil {
			return NewOperationError("apply", step.String(), err)
		}
		if err := a.printPosition(pos, result.Message); err != nil {
			return err
		}
	}
	return nil
}

// RunScript runs the Lua script at path against the session and writes the
// final cursor position.
func (a *App) RunScript(ctx context.Context, path string) error {
	defer a.bindContext(ctx)()

	rt := lua.NewRuntime(a.session, a.dispatcher, lua.WithOutput(a.out))
	defer rt.Close()

	a.logger.Info("running script %s", path)
	if err := rt.DoFile(ctx, path); err != nil {
		return NewOperationError("run script", path, err)
	}

	pos, err := a.session.Cursor()
	if err != nil {
		return NewOperationError("run script", path, err)
	}
	return a.printPosition(pos, "")
}

// Report writes the cursor position without moving it.
func (a *App) Report() error {
	pos, err := a.session.Cursor()
	if err != nil {
		return err
	}
	return a.printPosition(pos, a.session.Notice())
}

func (a *App) printPosition(pos buffer.Position, notice string) error {
	var err error
	if notice != "" {
		_, err = fmt.Fprintf(a.out, "%d:%d\t%s\n", pos.Line, pos.Character, notice)
	} else {
		_, err = fmt.Fprintf(a.out, "%d:%d\n", pos.Line, pos.Character)
	}
	if err != nil {
		return NewOperationError("write", "output", err)
	}
	return nil
}

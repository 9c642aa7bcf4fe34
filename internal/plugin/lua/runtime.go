package lua

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/wsjump/internal/dispatcher/handler"
	"github.com/dshills/wsjump/internal/input"
	"github.com/dshills/wsjump/internal/motion"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// Dispatcher executes actions on behalf of a script.
// *dispatcher.Dispatcher implements it.
type Dispatcher interface {
	Dispatch(action input.Action) handler.Result
}

// Runtime runs scripts against a host.
//
// gopher-lua's LState is not goroutine-safe. Runtime serializes runs with a
// mutex, so a Runtime may be shared but scripts never run concurrently.
type Runtime struct {
	L *lua.LState

	mu sync.Mutex

	host       motion.Host
	dispatcher Dispatcher
	timeout    time.Duration
	output     io.Writer

	// hostErr keeps the Go error behind the last raised Lua error so the
	// caller can still match it with errors.Is.
	hostErr error
	closed  bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithTimeout sets the time budget for each run. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		if d >= 0 {
			r.timeout = d
		}
	}
}

// WithOutput redirects print to w.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		if w != nil {
			r.output = w
		}
	}
}

// NewRuntime creates a runtime bound to host. Motions are sent to d.
func NewRuntime(host motion.Host, d Dispatcher, opts ...Option) *Runtime {
	r := &Runtime{
		host:       host,
		dispatcher: d,
		timeout:    DefaultTimeout,
		output:     os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(r.L)
	installPrint(r.L, r.output)
	newEditorModule(r).register(r.L)

	return r
}

// DoString runs code as a chunk named name.
func (r *Runtime) DoString(ctx context.Context, name, code string) error {
	return r.run(ctx, name, func(L *lua.LState) error {
		fn, err := L.Load(strings.NewReader(code), name)
		if err != nil {
			return err
		}
		L.Push(fn)
		return L.PCall(0, lua.MultRet, nil)
	})
}

// DoFile runs the script at path.
func (r *Runtime) DoFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ScriptError{Script: path, Message: "cannot read file", Err: err}
	}
	return r.DoString(ctx, path, string(data))
}

func (r *Runtime) run(ctx context.Context, name string, fn func(*lua.LState) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRuntimeClosed
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	r.hostErr = nil
	top := r.L.GetTop()
	err := r.doWithRecovery(fn)
	r.L.SetTop(top)
	if err == nil {
		return nil
	}

	se := &ScriptError{Script: name, Message: luaMessage(err), Err: r.hostErr}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		se.Err = ErrExecutionTimeout
	case ctx.Err() != nil:
		se.Err = ctx.Err()
	}
	return se
}

// doWithRecovery executes fn with panic recovery.
func (r *Runtime) doWithRecovery(fn func(*lua.LState) error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return fn(r.L)
}

// Global returns a global variable value.
func (r *Runtime) Global(name string) lua.LValue {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return lua.LNil
	}
	return r.L.GetGlobal(name)
}

// IsClosed reports whether Close has been called.
func (r *Runtime) IsClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Close releases the Lua state. It is safe to call more than once.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.L.Close()
	r.closed = true
	return nil
}

// raise records err and raises it as a Lua error.
func (r *Runtime) raise(L *lua.LState, op string, err error) int {
	r.hostErr = err
	L.RaiseError("%s: %v", op, err)
	return 0
}

func luaMessage(err error) string {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		return apiErr.Object.String()
	}
	return err.Error()
}

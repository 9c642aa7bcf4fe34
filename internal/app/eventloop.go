package app

import (
	"context"
	"errors"

	"github.com/dshills/wsjump/internal/input"
	"github.com/dshills/wsjump/internal/renderer/backend"
)

// stopLoop is posted to the terminal when the context is done.
type stopLoop struct{}

// RunInteractive draws the session on term and handles keys until the quit
// key is pressed, the screen closes or ctx is done. The terminal must
// already be initialized; the caller shuts it down.
func (a *App) RunInteractive(ctx context.Context, term *backend.Terminal) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)
	defer a.bindContext(ctx)()

	view := backend.NewView(term, backend.WithTabWidth(a.session.Buffer().TabWidth()))
	view.SetName(a.session.Name())
	a.session.OnNotify(view.SetNotice)
	defer a.session.OnNotify(nil)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = term.Interrupt(stopLoop{})
		case <-done:
		}
	}()

	log := a.logger.WithComponent("eventloop")
	log.Info("interactive session %s on %s", a.session.ID(), a.session.Name())
	defer a.logDispatchStats(log)

	if err := a.render(view); err != nil {
		return err
	}

	for {
		ev := term.PollEvent()
		switch ev.Type {
		case backend.EventClosed:
			return nil

		case backend.EventResize:
			term.Sync()

		case backend.EventInterrupt:
			switch data := ev.Data.(type) {
			case stopLoop:
				return ctx.Err()
			case func():
				data()
			}

		case backend.EventKey:
			if err := a.handleKey(ev.Key, view); err != nil {
				if errors.Is(err, ErrQuit) {
					log.Info("quit")
					return nil
				}
				return err
			}

		default:
			continue
		}

		if err := a.render(view); err != nil {
			return err
		}
	}
}

// handleKey dispatches the action bound to key. It returns ErrQuit for the
// quit action.
func (a *App) handleKey(key input.Key, view *backend.View) error {
	name, ok := a.Keymap().Lookup(key)
	if !ok {
		a.logger.Debug("unbound key %s", key)
		return nil
	}

	view.SetNotice("")
	a.session.ClearNotice()
	result := a.Dispatch(input.NewAction(name, input.SourceKeyboard))
	switch {
	case result.IsCancelled():
		return nil
	case result.IsError():
		view.SetNotice(result.Error.Error())
	case result.Message != "":
		view.SetNotice(result.Message)
	}

	quit, _ := result.GetData(DataQuit)
	if q, _ := quit.(bool); q {
		return ErrQuit
	}
	return nil
}

func (a *App) render(view *backend.View) error {
	pos, err := a.session.Cursor()
	if err != nil {
		return err
	}
	return view.Render(a.session.Snapshot(), pos)
}

func (a *App) logDispatchStats(log *Logger) {
	m := a.dispatcher.Metrics()
	if m == nil {
		return
	}
	snap := m.Snapshot()
	log.Debug("dispatched %d actions (%d no-op, %d errors, %d panics, avg %s)",
		snap.TotalDispatches, snap.TotalNoOps, snap.TotalErrors, snap.TotalPanics, snap.AverageDuration)
	for _, am := range snap.Actions {
		log.Debug("  %s: %d dispatches, %d no-op, %d errors",
			am.Name, am.DispatchCount, am.NoOpCount, am.ErrorCount)
	}
}

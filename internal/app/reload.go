package app

import (
	"os"

	"github.com/dshills/wsjump/internal/config"
	"github.com/dshills/wsjump/internal/watcher"
)

// WatchConfig reloads the configuration at path whenever it changes.
// Each reload is handed to post, which must run the function on the
// goroutine that owns the App; RunInteractive callers pass a function that
// posts through backend.Terminal.Interrupt. A file that fails to load or
// validate leaves the current configuration in place.
func (a *App) WatchConfig(path string, post func(func())) (*config.Watcher, error) {
	log := a.logger.WithComponent("config").WithField("path", path)

	w, err := config.NewWatcher(path, func(cfg *config.Config, err error) {
		post(func() {
			if err != nil {
				log.Warn("reload failed: %v", err)
				a.session.Notify("Config error: " + err.Error())
				return
			}
			if err := a.ApplyConfig(cfg); err != nil {
				log.Warn("reload rejected: %v", err)
				a.session.Notify("Config error: " + err.Error())
				return
			}
			log.Info("configuration reloaded")
			a.session.Notify("Config reloaded.")
		})
	})
	if err != nil {
		return nil, NewOperationError("watch config", path, err)
	}
	return w, nil
}

// WatchDocument reloads the session text whenever the file at path changes.
// The file is read on the watcher goroutine and the new text is handed to
// post like WatchConfig does. Read failures, including a removed file, keep
// the current text and are reported as a notice.
func (a *App) WatchDocument(path string, post func(func())) (*watcher.FileWatcher, error) {
	log := a.logger.WithComponent("document").WithField("path", path)

	w, err := watcher.New(path, func(err error) {
		var data []byte
		if err == nil {
			data, err = os.ReadFile(path)
		}
		post(func() {
			if err != nil {
				log.Warn("reload failed: %v", err)
				a.session.Notify("Reload failed: " + err.Error())
				return
			}
			if a.session.Reload(string(data)) {
				log.Info("document reloaded")
				a.session.Notify("Reloaded from disk.")
			}
		})
	})
	if err != nil {
		return nil, NewOperationError("watch document", path, err)
	}
	return w, nil
}

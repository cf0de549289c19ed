// control/hotreload.go
// Author: ain1084
//
// Watches the config file and propagates validated changes into a
// Store. A reload that fails validation is rejected and the previous
// configuration stays active.

package control

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher connects a Loader's config file to a Store.
type Watcher struct {
	loader *Loader
	path   string
	store  *Store
	logger *zap.Logger
}

// NewWatcher creates a watcher for the config file at path. The loader
// must be the one that performed the initial Load so file state and
// environment bindings carry over.
func NewWatcher(loader *Loader, path string, store *Store, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		loader: loader,
		path:   path,
		store:  store,
		logger: logger,
	}
}

// Start begins watching. Callbacks run on viper's watch goroutine; the
// method itself returns immediately.
func (w *Watcher) Start() {
	w.loader.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := w.loader.Load(w.path)
		if err != nil {
			w.logger.Warn("config reload rejected",
				zap.String("file", e.Name),
				zap.Error(err),
			)
			return
		}
		w.store.Update(cfg)
		w.logger.Info("configuration reloaded",
			zap.String("file", e.Name),
			zap.String("op", e.Op.String()),
		)
	})
	w.loader.v.WatchConfig()
}

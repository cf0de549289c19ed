// control/store.go
// Author: ain1084
//
// Thread-safe configuration store with dynamic update and hot-reload
// propagation.

package control

import (
	"sync"

	"go.uber.org/zap"
)

// Store holds the active configuration and notifies listeners when it
// changes. Reads return copies, so a snapshot never mutates under the
// caller.
type Store struct {
	mu        sync.RWMutex
	current   Config
	listeners []func(*Config)
	logger    *zap.Logger
}

// NewStore initializes a store with cfg as the active configuration.
// A nil logger disables logging.
func NewStore(cfg *Config, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		current: *cfg,
		logger:  logger,
	}
}

// Current returns a copy of the active configuration.
func (s *Store) Current() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.current
	return &cfg
}

// Update swaps the active configuration and dispatches listeners
// asynchronously.
func (s *Store) Update(cfg *Config) {
	s.update(cfg, false)
}

// UpdateSync swaps the active configuration and runs listeners on the
// calling goroutine, for deterministic test notification.
func (s *Store) UpdateSync(cfg *Config) {
	s.update(cfg, true)
}

// OnReload registers a listener hook called on config changes. The
// listener receives its own copy of the new configuration.
func (s *Store) OnReload(fn func(*Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) update(cfg *Config, synchronous bool) {
	s.mu.Lock()
	s.current = *cfg
	listeners := make([]func(*Config), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.logger.Info("configuration updated",
		zap.Int("ringCapacity", cfg.Ring.Capacity),
		zap.Int("ringBatchSize", cfg.Ring.BatchSize),
		zap.String("logLevel", cfg.Log.Level),
	)

	for _, fn := range listeners {
		snapshot := *cfg
		if synchronous {
			fn(&snapshot)
		} else {
			go fn(&snapshot)
		}
	}
}

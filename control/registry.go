// control/registry.go
// Author: ain1084
//
// Runtime registry of live ring buffers for monitoring and debug
// introspection. Registration is cheap and off the data path; the
// registry only holds StatsSource references and samples them on
// demand.

package control

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ain1084/direct-ring-buffer/api"
)

// Registry tracks named buffers and debug probes.
type Registry struct {
	mu     sync.RWMutex
	rings  map[string]api.StatsSource
	probes map[string]func() any
	logger *zap.Logger
}

// NewRegistry creates an empty registry. A nil logger disables logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		rings:  make(map[string]api.StatsSource),
		probes: make(map[string]func() any),
		logger: logger,
	}
}

// Register adds a buffer under name and returns the name actually used.
// An empty name is replaced with a generated UUID. Either handle of a
// pair may be registered; both report the same counters.
func (r *Registry) Register(name string, src api.StatsSource) (string, error) {
	if src == nil {
		return "", fmt.Errorf("register %q: nil stats source", name)
	}
	if name == "" {
		name = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rings[name]; exists {
		return "", fmt.Errorf("%w: %q", api.ErrAlreadyRegistered, name)
	}
	r.rings[name] = src

	r.logger.Info("ring registered",
		zap.String("name", name),
		zap.Int("capacity", src.Stats().Capacity),
	)
	return name, nil
}

// Deregister removes a buffer by name.
func (r *Registry) Deregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rings[name]; !exists {
		return fmt.Errorf("%w: %q", api.ErrNotRegistered, name)
	}
	delete(r.rings, name)

	r.logger.Info("ring deregistered", zap.String("name", name))
	return nil
}

// Names returns the registered buffer names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.rings))
	for name := range r.rings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot samples every registered buffer.
func (r *Registry) Snapshot() map[string]api.RingStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]api.RingStats, len(r.rings))
	for name, src := range r.rings {
		out[name] = src.Stats()
	}
	return out
}

// RegisterProbe inserts a named debug hook reported by DumpState.
func (r *Registry) RegisterProbe(name string, fn func() any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.probes[name] = fn
}

// DumpState returns the stats of all buffers plus the output of all
// probes, keyed for human consumption in debug endpoints.
func (r *Registry) DumpState() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.rings)+len(r.probes))
	for name, src := range r.rings {
		out["ring."+name] = src.Stats()
	}
	for name, fn := range r.probes {
		out[name] = fn()
	}
	return out
}

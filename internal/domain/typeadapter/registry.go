package typeadapter

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ericfisherdev/masterdata/internal/domain/model"
)

var (
	// ErrDuplicateType indicates a config type registered twice. A type has
	// exactly one adapter and one identity strategy for its lifetime.
	ErrDuplicateType = errors.New("typeadapter: config type already registered")
	// ErrInvalidDescriptor indicates a registration with a blank type or an
	// unknown identity strategy.
	ErrInvalidDescriptor = errors.New("typeadapter: invalid descriptor")
)

// Descriptor describes a registered config type.
type Descriptor struct {
	Type     model.ConfigType
	Strategy model.IdentityStrategy
}

// Registry records which config types share the configs table and the
// identity strategy each one committed to. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[model.ConfigType]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[model.ConfigType]Descriptor)}
}

// Register adds a descriptor. It fails if the type is already registered.
func (r *Registry) Register(d Descriptor) error {
	if d.Type == "" {
		return fmt.Errorf("%w: empty config type", ErrInvalidDescriptor)
	}
	switch d.Strategy {
	case model.StrategySurrogate, model.StrategyNaturalKey:
	default:
		return fmt.Errorf("%w: %s has strategy %q", ErrInvalidDescriptor, d.Type, d.Strategy)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[d.Type]; ok {
		return fmt.Errorf("%w: %s (%s)", ErrDuplicateType, d.Type, existing.Strategy)
	}
	r.entries[d.Type] = d
	return nil
}

// Lookup returns the descriptor for t.
func (r *Registry) Lookup(t model.ConfigType) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[t]
	return d, ok
}

// Types returns all registered types in ascending order.
func (r *Registry) Types() []model.ConfigType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]model.ConfigType, 0, len(r.entries))
	for t := range r.entries {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Register records adapter a in r.
func Register[D, C, U any](r *Registry, a Adapter[D, C, U]) error {
	return r.Register(Descriptor{Type: a.Type(), Strategy: a.Strategy()})
}

package registry

import (
	"reflect"
	"sync"

	"github.com/specialistvlad/pirago/internal/config"
	"github.com/specialistvlad/pirago/internal/functor"
)

// Registry guards a single shared *functor.Manager.
type Registry struct {
	mu      sync.Mutex
	manager *functor.Manager
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Default is the registry used by the package-level functions.
var Default = New()

// Register constructs a Manager for cfg and stores it. It fails with a
// *functor.ManagementError if a Manager is already stored.
func (r *Registry) Register(cfg config.Configuration, opts ...functor.Option) (*functor.Manager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(cfg, opts)
}

func (r *Registry) register(cfg config.Configuration, opts []functor.Option) (*functor.Manager, error) {
	if r.manager != nil {
		return nil, &functor.ManagementError{Op: "register", Err: functor.ErrAlreadyConstructed}
	}
	m, err := functor.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	r.manager = m
	return m, nil
}

// FromConfig returns the stored Manager when it was built for cfg, and
// otherwise replaces it with a new one built for cfg. Configurations of
// uncomparable types always get a new Manager. The options only take
// effect when a Manager is constructed.
func (r *Registry) FromConfig(cfg config.Configuration, opts ...functor.Option) (*functor.Manager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.manager != nil {
		if sameConfiguration(r.manager.Configuration(), cfg) {
			return r.manager, nil
		}
		// Build the replacement first so a failed construction keeps the
		// current Manager in place.
		m, err := functor.New(cfg, opts...)
		if err != nil {
			return nil, err
		}
		r.manager = m
		return m, nil
	}
	return r.register(cfg, opts)
}

// sameConfiguration reports whether a and b are the same comparable
// configuration value. Values of uncomparable types never match.
func sameConfiguration(a, b config.Configuration) bool {
	if a == nil || b == nil {
		return false
	}
	if !reflect.TypeOf(b).Comparable() || reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a == b
}

// Instance returns the stored Manager.
func (r *Registry) Instance() (*functor.Manager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.manager == nil {
		return nil, &functor.ManagementError{Op: "instance", Err: functor.ErrNotConstructed}
	}
	return r.manager, nil
}

// Reset drops the stored Manager. It is safe to call at any time.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.manager = nil
	r.mu.Unlock()
}

// Register calls Default.Register.
func Register(cfg config.Configuration, opts ...functor.Option) (*functor.Manager, error) {
	return Default.Register(cfg, opts...)
}

// FromConfig calls Default.FromConfig.
func FromConfig(cfg config.Configuration, opts ...functor.Option) (*functor.Manager, error) {
	return Default.FromConfig(cfg, opts...)
}

// Instance calls Default.Instance.
func Instance() (*functor.Manager, error) {
	return Default.Instance()
}

// Reset calls Default.Reset.
func Reset() {
	Default.Reset()
}

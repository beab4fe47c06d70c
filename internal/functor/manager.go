package functor

import (
	"fmt"

	"github.com/specialistvlad/pirago/internal/config"
)

// Manager resolves functor names and paths against one configuration.
// It holds no other state and is safe for concurrent use once built.
type Manager struct {
	cfg config.Configuration
}

type options struct {
	validate bool
}

// Option configures New.
type Option func(*options)

// WithValidation makes New run the configuration's validity check and fail
// with its *config.ValidityError.
func WithValidation() Option {
	return func(o *options) { o.validate = true }
}

// New constructs a Manager. A nil or empty configuration yields a
// *ManagementError wrapping ErrNoConfiguration.
func New(cfg config.Configuration, opts ...Option) (*Manager, error) {
	if absent(cfg) {
		return nil, &ManagementError{Op: "construct", Err: ErrNoConfiguration}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.validate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return &Manager{cfg: cfg}, nil
}

func absent(cfg config.Configuration) bool {
	if cfg == nil {
		return true
	}
	if e, ok := cfg.(interface{ Empty() bool }); ok {
		return e.Empty()
	}
	return false
}

// Configuration returns the configuration the manager was built with.
func (m *Manager) Configuration() config.Configuration {
	return m.cfg
}

// Dir returns the directory holding the functor for role. Build and clean
// functors share the builder directory.
func (m *Manager) Dir(role Role, build, item string) (string, error) {
	switch role {
	case RoleBuild, RoleClean:
		return m.cfg.BuilderDir(build, item)
	case RoleAnalyze:
		return m.cfg.AnalysisDir(build, item)
	case RoleRun:
		return m.cfg.RunnerDir(build, item)
	}
	return "", fmt.Errorf("unknown functor role %v", role)
}

// Resolve computes the functor for role. Configuration lookup errors are
// returned unchanged.
func (m *Manager) Resolve(role Role, build, item, flavor string) (Functor, error) {
	dir, err := m.Dir(role, build, item)
	if err != nil {
		return Functor{}, err
	}
	if err := config.CheckFlavor(m.cfg, build, item, flavor); err != nil {
		return Functor{}, err
	}
	name := Name(role, item, flavor)
	return Functor{
		Role: role,
		Dir:  dir,
		Name: name,
		File: JoinFile(dir, name),
	}, nil
}

// File returns the full script path of the functor for role.
func (m *Manager) File(role Role, build, item, flavor string) (string, error) {
	f, err := m.Resolve(role, build, item, flavor)
	if err != nil {
		return "", err
	}
	return f.File, nil
}

// ResolveSet resolves all four functors of an item/flavor pair.
func (m *Manager) ResolveSet(build, item, flavor string) (Set, error) {
	var s Set
	for _, role := range Roles {
		f, err := m.Resolve(role, build, item, flavor)
		if err != nil {
			return Set{}, err
		}
		*s.slot(role) = f
	}
	return s, nil
}

// BuilderName returns the build functor name of item and flavor.
func (m *Manager) BuilderName(item, flavor string) string { return Name(RoleBuild, item, flavor) }

// CleanerName returns the clean functor name of item and flavor.
func (m *Manager) CleanerName(item, flavor string) string { return Name(RoleClean, item, flavor) }

// RunnerName returns the run functor name of item and flavor.
func (m *Manager) RunnerName(item, flavor string) string { return Name(RoleRun, item, flavor) }

// AnalyzerName returns the analyze functor name of item and flavor.
func (m *Manager) AnalyzerName(item, flavor string) string { return Name(RoleAnalyze, item, flavor) }

// BuilderFile returns the path of the build functor script.
func (m *Manager) BuilderFile(build, item, flavor string) (string, error) {
	return m.File(RoleBuild, build, item, flavor)
}

// CleanerFile returns the path of the clean functor script.
func (m *Manager) CleanerFile(build, item, flavor string) (string, error) {
	return m.File(RoleClean, build, item, flavor)
}

// RunnerFile returns the path of the run functor script.
func (m *Manager) RunnerFile(build, item, flavor string) (string, error) {
	return m.File(RoleRun, build, item, flavor)
}

// AnalyzerFile returns the path of the analyze functor script.
func (m *Manager) AnalyzerFile(build, item, flavor string) (string, error) {
	return m.File(RoleAnalyze, build, item, flavor)
}

// Builder resolves the build functor.
func (m *Manager) Builder(build, item, flavor string) (Functor, error) {
	return m.Resolve(RoleBuild, build, item, flavor)
}

// Cleaner resolves the clean functor.
func (m *Manager) Cleaner(build, item, flavor string) (Functor, error) {
	return m.Resolve(RoleClean, build, item, flavor)
}

// Runner resolves the run functor.
func (m *Manager) Runner(build, item, flavor string) (Functor, error) {
	return m.Resolve(RoleRun, build, item, flavor)
}

// Analyzer resolves the analyze functor.
func (m *Manager) Analyzer(build, item, flavor string) (Functor, error) {
	return m.Resolve(RoleAnalyze, build, item, flavor)
}

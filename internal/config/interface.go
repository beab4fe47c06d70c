package config

import "context"

// Configuration is the lookup contract consumed by the functor resolver.
// All lookups are keyed by build directory and item name; a failed lookup
// returns a *LookupError.
type Configuration interface {
	// BuilderDir returns the directory holding the build and clean functors.
	BuilderDir(build, item string) (string, error)
	// AnalysisDir returns the directory holding the analysis functor.
	AnalysisDir(build, item string) (string, error)
	// RunnerDir returns the directory holding the run functor.
	RunnerDir(build, item string) (string, error)
	// Flavors returns the flavors an item can be built with.
	Flavors(build, item string) ([]string, error)
	// Validate checks the configuration content and returns a
	// *ValidityError describing every problem found.
	Validate() error
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given path and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}

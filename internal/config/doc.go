// Package config defines the format-agnostic configuration model for the
// application, along with the core interfaces (Configuration, Loader) that
// the functor resolver and the format-specific loaders agree on.
//
// The `config.Model` is the single source of truth for the `functor`
// package. Concrete loaders, such as the JSON and HCL ones, live in
// separate packages and only produce a *Model.
package config

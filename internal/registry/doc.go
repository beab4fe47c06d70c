// Package registry holds the process-wide functor Manager.
//
// Many call sites resolve functors from the same loaded configuration. The
// registry lets them share one Manager without threading it through every
// call: Register stores it, FromConfig shares or replaces it, Instance
// fetches it, and Reset clears it so a fresh Register can follow.
//
// A Registry is an ordinary value. The package-level functions operate on
// Default; tests and embedders can create their own with New.
package registry

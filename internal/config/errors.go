package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownBuild     = errors.New("unknown build directory")
	ErrUnknownItem      = errors.New("unknown item")
	ErrUnknownFlavor    = errors.New("unknown flavor")
	ErrMissingDirectory = errors.New("directory not configured")
)

// LookupError is returned when the configuration cannot resolve a value
// for a build/item/flavor combination.
type LookupError struct {
	Build  string
	Item   string
	Flavor string
	// Key names the value being looked up, e.g. "builder" or "runner".
	Key string
	Err error
}

func (e *LookupError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config lookup %q failed", e.Key)
	fmt.Fprintf(&b, " (build=%q item=%q", e.Build, e.Item)
	if e.Flavor != "" {
		fmt.Fprintf(&b, " flavor=%q", e.Flavor)
	}
	b.WriteString("): ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ValidityError is returned when the configuration content fails the
// validity check. Err usually holds a *multierror.Error listing every
// problem that was found.
type ValidityError struct {
	Err error
}

func (e *ValidityError) Error() string {
	return "invalid configuration: " + e.Err.Error()
}

func (e *ValidityError) Unwrap() error {
	return e.Err
}

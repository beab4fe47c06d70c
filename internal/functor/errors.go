package functor

import "errors"

var (
	ErrNoConfiguration    = errors.New("no configuration provided")
	ErrAlreadyConstructed = errors.New("functor manager already constructed")
	ErrNotConstructed     = errors.New("functor manager not constructed")
)

// ManagementError is returned for invalid construction or lifecycle use of
// a Manager.
type ManagementError struct {
	Op  string
	Err error
}

func (e *ManagementError) Error() string {
	return "functor management: " + e.Op + ": " + e.Err.Error()
}

func (e *ManagementError) Unwrap() error {
	return e.Err
}

package container

import "errors"

// Resolution errors. Factory-thrown errors pass through unchanged.
var (
	// ErrNotRegistered is returned when a token has no registration.
	ErrNotRegistered = errors.New("service not registered")

	// ErrCircularDependency is returned when a token appears on its own
	// dependency path.
	ErrCircularDependency = errors.New("circular dependency detected")

	// ErrNotResolved is returned by ResolveCached for a token that has not
	// been resolved yet.
	ErrNotResolved = errors.New("service not resolved")
)

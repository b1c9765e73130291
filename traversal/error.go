package traversal

import (
	"fmt"

	"github.com/pkg/errors"
)

// TypeError is returned when an object is not locatable at all.
type TypeError struct {
	Object any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("object of type %T has no location", e.Object)
}

// LocationError is returned when a locatable object cannot be placed under a root.
type LocationError struct {
	Object any
	Reason string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("cannot locate object of type %T: %v", e.Object, e.Reason)
}

// TraversalError is returned when a computed href is neither a resource path nor an
// identifier.
type TraversalError struct {
	Href string
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("invalid href %q", e.Href)
}

// IsTypeError reports whether err or anything it wraps is a *TypeError.
func IsTypeError(err error) bool {
	var target *TypeError
	return errors.As(err, &target)
}

// IsLocationError reports whether err or anything it wraps is a *LocationError.
func IsLocationError(err error) bool {
	var target *LocationError
	return errors.As(err, &target)
}

// IsTraversalError reports whether err or anything it wraps is a *TraversalError.
func IsTraversalError(err error) bool {
	var target *TraversalError
	return errors.As(err, &target)
}

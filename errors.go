package routedoc

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrResourceNotFound is returned when no route is bound to a resource.
var ErrResourceNotFound = errors.New("could not find endpoint for resource")

// SpecError is the error returned by [Resolver.PathHelper].
// Use errors.Is(err, ErrResourceNotFound) to test for the missing-route case.
type SpecError struct {
	Resource ResourceID
	Name     string
	Err      error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("routedoc: %v %s (id %d)", e.Err, e.Name, e.Resource)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// ValidationErrors maps route registration inputs to their errors.
// It is an alias for [validation.Errors] from ozzo-validation.
type ValidationErrors = validation.Errors

package platform

import (
	"errors"
	"fmt"
)

// ErrNotFound marks identifier lookups the platform answered with 404.
// Callers use errors.Is to distinguish "no such resource" from transport
// and auth failures, which pass through with their own messages.
var ErrNotFound = errors.New("not found")

// NotFoundError reports which kind of resource was missing so commands can
// print "task group "x" not found" instead of a bare status code.
type NotFoundError struct {
	Kind string
	Ref  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

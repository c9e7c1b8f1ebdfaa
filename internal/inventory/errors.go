package inventory

import "fmt"

// MissingFieldError reports a matched server lacking an attribute needed
// for its host variables. A partial inventory is never emitted.
type MissingFieldError struct {
	Server string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("server %q: missing field %s", e.Server, e.Field)
}

package check

import (
	"errors"
	"fmt"
	"strings"
)

// ErrArgumentViolation is matched by every *ArgumentError.
var ErrArgumentViolation = errors.New("argument violation")

// ArgumentError reports a call whose arguments match none of the documented
// signatures. Errors holds the failures of the closest signature.
type ArgumentError struct {
	Class  string
	Method string
	Errors []error
}

func (e *ArgumentError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s.%s(): %s", e.Class, e.Method, strings.Join(msgs, "; "))
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgumentViolation
}

func (e *ArgumentError) Unwrap() []error {
	return e.Errors
}

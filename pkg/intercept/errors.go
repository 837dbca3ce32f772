package intercept

import "errors"

var (
	// ErrConstructionConflict is returned when a behavior object already has a proxy.
	ErrConstructionConflict = errors.New("behavior object already proxied")
	// ErrNilBehavior is returned when a class has no behavior object to wrap.
	ErrNilBehavior = errors.New("class has no behavior object")
)

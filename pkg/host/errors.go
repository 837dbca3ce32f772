package host

import "errors"

var (
	// ErrUnknownMember is returned by Object.Invoke when the member cannot be resolved.
	ErrUnknownMember = errors.New("unknown member")

	// ErrNotCallable is returned by Object.Invoke when the member is not a Callable.
	ErrNotCallable = errors.New("member is not callable")
)

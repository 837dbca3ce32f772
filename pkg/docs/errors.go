package docs

import "errors"

// ErrInvalidDocument is returned when a documentation file cannot be decoded.
var ErrInvalidDocument = errors.New("invalid documentation document")

package mongo

import "errors"

// Sentinel errors the handlers translate into HTTP status codes with
// errors.Is. Underlying driver errors are wrapped so no storage detail
// leaks to the caller.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

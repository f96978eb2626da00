package money

import "errors"

// ErrInvalidArgument marks malformed or missing input: blank identifiers,
// uninitialized Money values, non-positive amounts, mismatched currencies.
// It always fires before any state change, so a failed operation has no
// side effect. Callers match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

package taskstore

import "errors"

// ErrEmptyText is matched by every ValidationError raised for blank input.
var ErrEmptyText = errors.New("task text is empty")

// ValidationError reports rejected input. The list is never modified when one is returned.
type ValidationError struct {
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

package errors

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalid        = errors.New("invalid")
	ErrInvalidRequest = errors.New("invalid request")
	ErrIncompleteForm = errors.New("incomplete form")
	ErrInvalidImage   = errors.New("invalid image")
	ErrStorage        = errors.New("storage error")
	ErrCorruptData    = errors.New("corrupt stored data")
	ErrEventStore     = errors.New("event store error")
)

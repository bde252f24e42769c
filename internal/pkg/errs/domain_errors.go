package errs

import "errors"

// Category markers. Concrete errors are attached with Mark so that the
// transport layer can map them without knowing every sentinel.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrConflict       = errors.New("conflict")
	ErrForbidden      = errors.New("forbidden")
)

// NewNotFound returns a sentinel that matches ErrNotFound.
func NewNotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

// NewInvalid returns a sentinel that matches ErrInvalidRequest.
func NewInvalid(msg string) error {
	return Mark(New(msg), ErrInvalidRequest)
}

func NewForbidden(msg string) error {
	return Mark(New(msg), ErrForbidden)
}

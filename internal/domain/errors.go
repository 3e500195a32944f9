package domain

import "errors"

// Error kinds shared by the storage, workflow and HTTP layers.
// Callers wrap them with fmt.Errorf("...: %w") and test with errors.Is.
var (
	// ErrStorageUnavailable means a content file is missing or unreadable.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrMalformedStorage means a content file could not be decoded.
	ErrMalformedStorage = errors.New("malformed storage")
	// ErrNotFound means the requested post or project does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidationRejected means user input (form field or upload) was refused.
	ErrValidationRejected = errors.New("validation rejected")
	// ErrUnauthorized means a protected operation was attempted without a session.
	ErrUnauthorized = errors.New("unauthorized")
)

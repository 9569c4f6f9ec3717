package compactsize

import "errors"

// Error kinds shared by every decoder in the module.
var (
	// ErrInsufficientBytes indicates the buffer ends before a field is complete.
	ErrInsufficientBytes = errors.New("codec: insufficient bytes")

	// ErrInvalidFormat indicates bytes that are present but structurally malformed.
	ErrInvalidFormat = errors.New("codec: invalid format")
)

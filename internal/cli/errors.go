package cli

import "errors"

var (
	// ErrRead is returned when the input stream cannot be read.
	ErrRead = errors.New("failed to read input")

	// ErrWrite is returned when the output stream cannot be written.
	ErrWrite = errors.New("failed to write output")

	// ErrInvalidMode is returned for an unknown processing mode.
	ErrInvalidMode = errors.New("invalid mode")
)

package logger

import "errors"

// ErrInvalidFormat is returned for an unknown output format name.
var ErrInvalidFormat = errors.New("invalid log format")

// Package cli implements the sanitize-filename command: it reads names from
// an input stream, sanitizes them with package filename and writes one name
// per line to the output stream.
//
// Behaviour is configured through SANITIZE_* environment variables (see
// Config). Diagnostics go to the error stream through log/slog so the output
// stream only ever carries sanitized names.
//
// Exit codes: ExitOK on success, ExitFailure on read, write or cancellation
// errors, ExitUsage on bad arguments or invalid configuration.
package cli

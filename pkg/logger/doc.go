// Package logger builds *slog.Logger values from functional options and adds
// attributes taken from context.Context to every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the Format,
// applies static attributes and, when ContextExtractor callbacks are
// registered, wraps the handler so each record logged through a *Context
// method carries the values found in its context (for example a run id).
//
// # Usage
//
//	import "github.com/dmitrymomot/friendlyname/pkg/logger"
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//
//	ctx := context.WithValue(context.Background(), runIDKey{}, id)
//	log.InfoContext(ctx, "done", logger.Duration(time.Since(start)))
//
// # Defaults
//
// Without options New logs text records at INFO level to os.Stderr.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil, so
//
//	log.Info("finished", logger.Error(err))
//
// needs no nil check. ParseFormat reports ErrInvalidFormat for unknown
// format names; WithFormat panics on them.
package logger

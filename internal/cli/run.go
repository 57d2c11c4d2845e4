package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/friendlyname/pkg/config"
	"github.com/dmitrymomot/friendlyname/pkg/filename"
	"github.com/dmitrymomot/friendlyname/pkg/logger"
)

// Name is the command name used in usage and error messages.
const Name = "sanitize-filename"

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

type runIDKey struct{}

func runIDFromContext(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RunID(id), true
}

// Main is the command entry point. It rejects positional arguments, loads
// Config from the environment and hands over to Run.
func Main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(stderr, "usage: %s < input > output\n", Name)
		fmt.Fprintf(stderr, "reads names from stdin and writes one sanitized name per line to stdout\n")
		return ExitUsage
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", Name, err)
		return ExitUsage
	}

	return Run(ctx, cfg, stdin, stdout, stderr)
}

// Run processes stdin into stdout according to cfg and returns an exit code.
func Run(ctx context.Context, cfg Config, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.logFormat()),
		logger.WithOutput(stderr),
		logger.WithAttr(logger.Component(Name)),
		logger.WithContextExtractors(runIDFromContext),
	)
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	mode := cfg.mode()
	p := NewProcessor(filename.New(cfg.Options()...), log)

	log.DebugContext(ctx, "starting",
		slog.String("mode", string(mode)),
		slog.Bool("trim_dashes", cfg.TrimDashes),
		slog.Bool("url_safe", cfg.URLSafe),
		slog.Bool("drop_invisible", cfg.DropInvisible),
		slog.Bool("normalize", cfg.Normalize),
	)

	start := time.Now()
	var (
		stats Stats
		err   error
	)
	switch mode {
	case ModeWhole:
		stats, err = p.Whole(ctx, stdin, stdout)
	default:
		stats, err = p.Lines(ctx, stdin, stdout)
	}

	summary := logger.Group("stats",
		slog.Int("lines", stats.Lines),
		slog.Int("modified", stats.Modified),
	)

	switch {
	case err == nil:
		log.DebugContext(ctx, "finished", summary, logger.Duration(time.Since(start)))
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(ctx, "interrupted", summary, logger.Error(err))
		return ExitFailure
	default:
		log.ErrorContext(ctx, "sanitize failed", summary, logger.Error(err))
		return ExitFailure
	}
}

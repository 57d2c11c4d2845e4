// Command sanitize-filename reads names from stdin, one per line, and prints
// a filename-safe version of each to stdout.
//
// Policies and logging are configured through the environment:
//
//	SANITIZE_MODE            lines (default) or whole
//	SANITIZE_TRIM_DASHES     trim leading and trailing dashes
//	SANITIZE_URL_SAFE        also replace #%{}^~ and backtick
//	SANITIZE_DROP_INVISIBLE  delete invisible format characters
//	SANITIZE_NORMALIZE       compose the result to Unicode NFC
//	SANITIZE_LOG_LEVEL       DEBUG, INFO, WARN (default) or ERROR
//	SANITIZE_LOG_FORMAT      text (default) or json
//
// A .env file in the working directory is read as well.
//
// SIGINT or SIGTERM stops the command after the current line; a second
// signal terminates it immediately.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/friendlyname/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		stop()
	}()

	return cli.Main(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/friendlyname/pkg/filename"
)

// Stats summarises one processing run.
type Stats struct {
	Lines    int // names written
	Modified int // names that differ from their input
}

// Processor streams names from a reader through a Sanitizer into a writer.
type Processor struct {
	sanitizer *filename.Sanitizer
	log       *slog.Logger
}

// NewProcessor returns a Processor. A nil logger discards diagnostics.
func NewProcessor(s *filename.Sanitizer, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Processor{sanitizer: s, log: log}
}

// Lines sanitizes r line by line and writes each result followed by '\n'.
// Lines end with LF or CRLF; a final line without terminator is processed
// too. Output is flushed whenever the reader has no more buffered input, so
// interactive use sees results immediately. The context is checked between
// lines.
func (p *Processor) Lines(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			_ = bw.Flush()
			return stats, err
		}

		line, readErr := br.ReadString('\n')
		if line != "" {
			if err := p.writeName(ctx, bw, &stats, trimLineEnding(line)); err != nil {
				return stats, err
			}
			if br.Buffered() == 0 {
				if err := bw.Flush(); err != nil {
					return stats, errors.Join(ErrWrite, err)
				}
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			_ = bw.Flush()
			return stats, errors.Join(ErrRead, readErr)
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, errors.Join(ErrWrite, err)
	}
	return stats, nil
}

// Whole reads all of r and writes it as a single sanitized name followed by
// '\n'. One trailing line ending is dropped first since it terminates the
// stream rather than belonging to the name.
func (p *Processor) Whole(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Stats{}, errors.Join(ErrRead, err)
	}

	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	bw := bufio.NewWriter(w)
	var stats Stats
	if err := p.writeName(ctx, bw, &stats, trimLineEnding(string(data))); err != nil {
		return stats, err
	}
	if err := bw.Flush(); err != nil {
		return stats, errors.Join(ErrWrite, err)
	}
	return stats, nil
}

func (p *Processor) writeName(ctx context.Context, w *bufio.Writer, stats *Stats, in string) error {
	out := p.sanitizer.Sanitize(in)

	stats.Lines++
	if out != in {
		stats.Modified++
		p.log.DebugContext(ctx, "name sanitized",
			slog.Int("line", stats.Lines),
			slog.String("input", in),
			slog.String("output", out),
		)
	}

	if _, err := w.WriteString(out); err != nil {
		return errors.Join(ErrWrite, err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}

func trimLineEnding(s string) string {
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(t, "\r")
	}
	return s
}

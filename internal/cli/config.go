package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/friendlyname/pkg/filename"
	"github.com/dmitrymomot/friendlyname/pkg/logger"
)

// Mode selects how the input stream is split before sanitizing.
type Mode string

const (
	// ModeLines sanitizes every input line on its own.
	ModeLines Mode = "lines"
	// ModeWhole sanitizes the entire input as one name, so line breaks become dashes.
	ModeWhole Mode = "whole"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch v := Mode(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case ModeLines, ModeWhole:
		*m = v
		return nil
	default:
		return fmt.Errorf("%w %q: must be %q or %q", ErrInvalidMode, string(text), ModeLines, ModeWhole)
	}
}

// Config is read from the environment (and an optional .env file).
// The zero value behaves like the defaults.
type Config struct {
	Mode          Mode          `env:"SANITIZE_MODE" envDefault:"lines"`
	TrimDashes    bool          `env:"SANITIZE_TRIM_DASHES" envDefault:"false"`
	URLSafe       bool          `env:"SANITIZE_URL_SAFE" envDefault:"false"`
	DropInvisible bool          `env:"SANITIZE_DROP_INVISIBLE" envDefault:"false"`
	Normalize     bool          `env:"SANITIZE_NORMALIZE" envDefault:"false"`
	LogLevel      slog.Level    `env:"SANITIZE_LOG_LEVEL" envDefault:"WARN"`
	LogFormat     logger.Format `env:"SANITIZE_LOG_FORMAT" envDefault:"text"`
}

// Options translates the policy switches into sanitizer options.
func (c Config) Options() []filename.Option {
	return []filename.Option{
		filename.TrimDashes(c.TrimDashes),
		filename.URLSafe(c.URLSafe),
		filename.DropInvisible(c.DropInvisible),
		filename.Normalize(c.Normalize),
	}
}

func (c Config) mode() Mode {
	if c.Mode == "" {
		return ModeLines
	}
	return c.Mode
}

func (c Config) logFormat() logger.Format {
	if c.LogFormat == "" {
		return logger.FormatText
	}
	return c.LogFormat
}

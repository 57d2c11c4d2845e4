// Package config loads typed, cached application configuration from
// environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The `.env` file in the working directory is loaded once, if present.
//     Variables already set in the process environment take precedence.
//   - The environment is parsed into any struct using `env` field tags.
//   - Each configuration type is parsed once and cached for the lifetime of
//     the process.
//
// # Usage
//
//	type Config struct {
//	    Mode       string `env:"SANITIZE_MODE" envDefault:"lines"`
//	    TrimDashes bool   `env:"SANITIZE_TRIM_DASHES" envDefault:"false"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`   – failed to parse env vars into struct.
//   - `ErrConfigNotLoaded` – the parsed value could not be read back from the cache.
//   - `ErrNilPointer`      – nil pointer passed to `Load`.
//
// A failed parse is not cached, so Load may be retried after the environment
// has been corrected.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the cache between tests that change the
// environment.
package config

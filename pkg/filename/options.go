package filename

// Option configures a Sanitizer.
type Option func(*config)

// config holds the sanitizing policy.
type config struct {
	trimDashes    bool
	urlSafe       bool
	dropInvisible bool
	normalize     bool
}

// defaultConfig returns the default policy.
func defaultConfig() *config {
	return &config{}
}

// TrimDashes controls whether dashes produced from line breaks (and literal
// dashes) are trimmed from both ends of the result like underscores and
// spaces are. Default is false: a leading or trailing dash marks a line
// boundary at the edge of the input and is kept.
func TrimDashes(enabled bool) Option {
	return func(c *config) {
		c.trimDashes = enabled
	}
}

// URLSafe additionally replaces the URL-unsafe characters # % { } ^ ~ and the
// backtick with an underscore.
func URLSafe(enabled bool) Option {
	return func(c *config) {
		c.urlSafe = enabled
	}
}

// DropInvisible removes ClassFormat characters (zero width spaces, bidi
// marks, BOM, …) instead of replacing them with an underscore.
func DropInvisible(enabled bool) Option {
	return func(c *config) {
		c.dropInvisible = enabled
	}
}

// Normalize applies Unicode NFC before classification, so an accent stored
// as a combining mark after its letter comes out as one composed character.
// The rune count guarantee then holds relative to the normalized input.
func Normalize(enabled bool) Option {
	return func(c *config) {
		c.normalize = enabled
	}
}

package filename

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Sanitizer converts strings into file system friendly and human readable
// names under a fixed policy. Build one with New.
type Sanitizer struct {
	cfg      config
	cutset   string
	pipeline func(string) string
}

// std backs the package-level functions.
var std = New()

// New returns a Sanitizer configured by opts.
func New(opts ...Option) *Sanitizer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Sanitizer{
		cfg:    *cfg,
		cutset: "_ ",
	}
	if cfg.trimDashes {
		s.cutset = "_ -"
	}

	var normalize func(string) string
	if cfg.normalize {
		// Composing again at the end keeps the result a fixed point when
		// dropped characters leave a combining mark next to its base letter.
		normalize = norm.NFC.String
	}

	s.pipeline = Compose(
		normalize,
		s.substitute,
		collapse,
		s.trim,
		normalize,
	)

	return s
}

// Sanitize converts s into a file system friendly and human readable form
// using the default policy.
func Sanitize(s string) string {
	return std.Sanitize(s)
}

// Sanitize converts in into a file system friendly and human readable form.
func (s *Sanitizer) Sanitize(in string) string {
	if in == "" {
		return ""
	}
	return s.pipeline(in)
}

// substitute replaces every character according to its class.
func (s *Sanitizer) substitute(in string) string {
	var b strings.Builder
	b.Grow(len(in))

	for i := 0; i < len(in); {
		r, size := utf8.DecodeRuneInString(in[i:])

		class := ClassUnprintable
		if r != utf8.RuneError || size > 1 {
			class = s.Classify(r)
		}

		start := i
		i += size
		if r == '\r' && i < len(in) && in[i] == '\n' {
			i++
		}

		switch class {
		case ClassSafe:
			b.WriteString(in[start:i])
		case ClassNewline:
			b.WriteByte(dash)
		case ClassForbidden:
			b.WriteByte(underscore)
		case ClassFormat:
			if !s.cfg.dropInvisible {
				b.WriteByte(underscore)
			}
		case ClassUnprintable:
			b.WriteByte(space)
		}
	}

	return b.String()
}

// collapse reduces every run of an identical replacement character to one.
func collapse(in string) string {
	var b strings.Builder
	b.Grow(len(in))

	last := rune(-1)
	for _, r := range in {
		if r == last && isReplacement(r) {
			continue
		}
		b.WriteRune(r)
		last = r
	}

	return b.String()
}

func (s *Sanitizer) trim(in string) string {
	return strings.Trim(in, s.cutset)
}

func isReplacement(r rune) bool {
	return r == underscore || r == space || r == dash
}

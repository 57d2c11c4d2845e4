package filename

import (
	"unicode"
	"unicode/utf8"
)

// Class is the category a character belongs to. It decides the replacement.
type Class uint8

const (
	// ClassSafe characters are passed through unchanged.
	ClassSafe Class = iota
	// ClassNewline characters are line terminators, replaced by '-'.
	ClassNewline
	// ClassForbidden characters are rejected by common file systems, replaced by '_'.
	ClassForbidden
	// ClassFormat characters are invisible formatting code points, replaced by '_'.
	ClassFormat
	// ClassUnprintable characters are any other non-printable input, replaced by ' '.
	ClassUnprintable
)

func (c Class) String() string {
	switch c {
	case ClassSafe:
		return "safe"
	case ClassNewline:
		return "newline"
	case ClassForbidden:
		return "forbidden"
	case ClassFormat:
		return "format"
	case ClassUnprintable:
		return "unprintable"
	default:
		return "unknown"
	}
}

// Replacement characters.
const (
	underscore = '_'
	space      = ' '
	dash       = '-'
)

const (
	// NTFS critical characters.
	forbiddenChars = `/\:*?"<>|`
	// Unsafe in URLs. Square brackets are left out on purpose.
	urlUnsafeChars = "#%{}^~`"
)

// rule is one entry of the ordered classification table.
type rule struct {
	match func(r rune) bool
	class Class
}

// rules is consulted top to bottom for runes outside the ASCII table.
var rules = []rule{
	{isNewline, ClassNewline},
	{func(r rune) bool { return unicode.Is(unicode.Cf, r) }, ClassFormat},
	{func(r rune) bool { return r != ' ' && !unicode.IsPrint(r) }, ClassUnprintable},
}

// asciiClasses caches the default classification of the ASCII range.
var asciiClasses [utf8.RuneSelf]Class

func init() {
	for r := rune(0); r < utf8.RuneSelf; r++ {
		asciiClasses[r] = classifyRules(r)
	}
	for _, r := range forbiddenChars {
		asciiClasses[r] = ClassForbidden
	}
}

func classifyRules(r rune) Class {
	for _, rl := range rules {
		if rl.match(r) {
			return rl.class
		}
	}
	return ClassSafe
}

func isNewline(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Classify reports the class of r under the default policy.
// utf8.RuneError is reported as ClassSafe because it is a printable
// character; invalid bytes are classified by the Sanitizer itself.
func Classify(r rune) Class {
	return std.Classify(r)
}

// Classify reports the class of r under the sanitizer's policy.
func (s *Sanitizer) Classify(r rune) Class {
	if r >= 0 && r < utf8.RuneSelf {
		if s.cfg.urlSafe && isURLUnsafe(r) {
			return ClassForbidden
		}
		return asciiClasses[r]
	}
	return classifyRules(r)
}

func isURLUnsafe(r rune) bool {
	for _, c := range urlUnsafeChars {
		if c == r {
			return true
		}
	}
	return false
}

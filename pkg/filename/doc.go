// Package filename converts arbitrary strings into a file system friendly and
// human readable form.
//
// The conversion keeps as much of the original text as possible. Characters
// that common file systems reject are replaced by an underscore, line breaks
// become a dash and any other unprintable character becomes a space. Runs of
// the same replacement character are collapsed into one and leading or
// trailing underscores and spaces are trimmed away.
//
//	name := filename.Sanitize("Read: http://blog.getreu.net/projects/tp-note/")
//	// name == "Read_ http_blog.getreu.net_projects_tp-note"
//
// # Classification
//
// Every input character falls into exactly one Class:
//
//   - ClassSafe – printable characters, including the ASCII space. Passed through.
//   - ClassNewline – LF, VT, FF, CR, NEL, U+2028 and U+2029. A CRLF pair counts
//     as a single line break. Replaced by '-'.
//   - ClassForbidden – the characters `/ \ : * ? " < > |`. Replaced by '_'.
//   - ClassFormat – invisible formatting code points (Unicode category Cf) such
//     as zero width spaces, bidi marks and the byte order mark. Replaced by '_'.
//   - ClassUnprintable – everything else that is not printable: control
//     characters, whitespace other than the ASCII space, private use and
//     unassigned code points, and bytes that are not valid UTF-8. Replaced by ' '.
//
// Membership in ClassFormat and ClassUnprintable follows the Unicode tables of
// the standard library's unicode package (see unicode.Version).
//
// # Policies
//
// Sanitize applies the default policy. New builds a Sanitizer with a
// different one:
//
//	s := filename.New(
//	    filename.TrimDashes(true),
//	    filename.URLSafe(true),
//	)
//	s.Sanitize("~/notes\n") // "notes"
//
// # Guarantees
//
// With the default policy the result never starts or ends with '_' or ' ',
// never contains "__", "  " or "--", is valid UTF-8, holds no more runes than
// the input and is a fixed point: sanitizing it again returns it unchanged.
// Safe characters keep their relative order. Distinct inputs may map to the
// same output.
//
// Neither length limits nor reserved device names (CON, NUL, LPT1, …) are
// handled; callers that need them should apply them to the result.
//
// # Concurrency
//
// Sanitizer values are immutable once built and may be shared between
// goroutines.
package filename

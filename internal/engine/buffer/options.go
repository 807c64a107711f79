package buffer

import "strings"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the buffer's line ending style.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithTabWidth sets the buffer's tab width.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithIndentUnit sets the initial indentation unit.
func WithIndentUnit(unit string) Option {
	return func(b *Buffer) {
		if unit != "" {
			b.indentUnit = unit
		}
	}
}

// DetectLineEnding returns LineEndingCRLF when CRLF is the most common
// line ending in text, LineEndingLF otherwise.
func DetectLineEnding(text string) LineEnding {
	crlf := strings.Count(text, "\r\n")
	lf := strings.Count(text, "\n") - crlf
	if crlf > 0 && crlf >= lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// WithDetectedLineEnding sets the buffer's line ending style based on content.
func WithDetectedLineEnding(text string) Option {
	return WithLineEnding(DetectLineEnding(text))
}

package buffer

import "strings"

// maxIndentSampleLines bounds how many lines DetectIndent inspects.
const maxIndentSampleLines = 1000

// IndentUnit returns the text inserted for one level of indentation.
func (b *Buffer) IndentUnit() string {
	return b.indentUnit
}

// DetectIndent derives the indentation unit from the buffer content.
// Tab-indented lines win over space-indented ones; for spaces the smallest
// non-zero step between consecutive indented lines is used. When the content
// carries no indentation, fallback is used (an empty fallback keeps the
// current unit).
func (b *Buffer) DetectIndent(fallback string) {
	var tabs, spaces int
	step := 0
	prev := 0

	for line := 0; line <= b.LastLine() && line < maxIndentSampleLines; line++ {
		content := b.LineContent(line)
		if strings.TrimSpace(content) == "" {
			continue
		}
		if strings.HasPrefix(content, "\t") {
			tabs++
			continue
		}
		n := len(content) - len(strings.TrimLeft(content, " "))
		if n > 0 {
			spaces++
		}
		diff := n - prev
		if diff < 0 {
			diff = -diff
		}
		if diff > 1 && (step == 0 || diff < step) {
			step = diff
		}
		prev = n
	}

	switch {
	case tabs > 0 && tabs >= spaces:
		b.indentUnit = "\t"
	case step > 0:
		b.indentUnit = strings.Repeat(" ", step)
	case fallback != "":
		b.indentUnit = fallback
	}
}

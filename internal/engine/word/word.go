package word

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Class categorizes a run of text for word motions.
type Class uint8

const (
	ClassSpace   Class = iota // horizontal whitespace
	ClassNewline              // a single line break
	ClassWord                 // letters, digits and underscores
	ClassPunct                // everything else
)

// String returns a readable name for the class.
func (c Class) String() string {
	switch c {
	case ClassSpace:
		return "space"
	case ClassNewline:
		return "newline"
	case ClassWord:
		return "word"
	default:
		return "punct"
	}
}

// isStop reports whether a motion may rest at the start of a run of class c.
func (c Class) isStop() bool {
	return c == ClassWord || c == ClassPunct
}

// Run is a maximal span of text whose grapheme clusters share a class.
type Run struct {
	Start int
	End   int
	Class Class
}

// classify returns the class of a grapheme cluster.
func classify(seg string) Class {
	r, _ := utf8.DecodeRuneInString(seg)
	switch {
	case r == '\n' || r == '\r':
		return ClassNewline
	case unicode.IsSpace(r):
		return ClassSpace
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsMark(r):
		return ClassWord
	default:
		return ClassPunct
	}
}

// scanRuns splits text[from:to] into grapheme clusters, merges neighbours
// of equal class, and calls fn for every run, in order,
// until fn returns false. from should be a line start so segmentation
// begins at a boundary.
func scanRuns(text string, from, to int, fn func(Run) bool) {
	if to > len(text) {
		to = len(text)
	}
	if from >= to {
		return
	}

	rest := text[from:to]
	pos := from
	state := -1
	var seg string
	var cur Run
	open := false

	for len(rest) > 0 {
		seg, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		class := classify(seg)
		if open && class == cur.Class && class != ClassNewline {
			cur.End = pos + len(seg)
		} else {
			if open && !fn(cur) {
				return
			}
			cur = Run{Start: pos, End: pos + len(seg), Class: class}
			open = true
		}
		pos += len(seg)
	}
	if open {
		fn(cur)
	}
}

// lineStart returns the offset of the start of the line containing pos.
func lineStart(text string, pos int) int {
	return strings.LastIndexByte(text[:pos], '\n') + 1
}

// Scanner scans a text snapshot starting from an offset.
type Scanner struct {
	text string
	pos  int
}

// NewScanner creates a scanner positioned at offset. The offset is clamped
// to the text.
func NewScanner(text string, offset int) *Scanner {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return &Scanner{text: text, pos: offset}
}

// NextBoundary returns the start of the next word or punctuation run after
// the one containing the scanner position. When no such run exists the end
// of the text is returned, unless the scanner is already there.
func (s *Scanner) NextBoundary() (int, bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}

	found := -1
	scanRuns(s.text, lineStart(s.text, s.pos), len(s.text), func(r Run) bool {
		if r.Start > s.pos && r.Class.isStop() {
			found = r.Start
			return false
		}
		return true
	})
	if found < 0 {
		return len(s.text), true
	}
	return found, true
}

// PrevBoundary returns the start of the nearest word or punctuation run
// that begins before the scanner position.
func (s *Scanner) PrevBoundary() (int, bool) {
	end := s.pos
	for end > 0 {
		from := lineStart(s.text, end-1)
		found := -1
		scanRuns(s.text, from, end, func(r Run) bool {
			if r.Class.isStop() {
				found = r.Start
			}
			return true
		})
		if found >= 0 {
			return found, true
		}
		end = from
	}
	return 0, false
}

// EndBoundary returns the exclusive end of the word or punctuation run that
// contains the grapheme after the scanner position, skipping whitespace.
// From the first letter of "hello world" this is 5.
func (s *Scanner) EndBoundary() (int, bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}

	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s.text[s.pos:], -1)
	p := s.pos + len(cluster)

	found := -1
	scanRuns(s.text, lineStart(s.text, s.pos), len(s.text), func(r Run) bool {
		if r.End > p && r.Class.isStop() {
			found = r.End
			return false
		}
		return true
	})
	if found < 0 {
		return 0, false
	}
	return found, true
}

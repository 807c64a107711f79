package buffer

import (
	"fmt"
	"strings"
)

// Point represents a line and column position.
// Both Line and Column are 0-indexed; Column is measured in bytes from the
// start of the line.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// Advance returns the point reached after writing text at p.
func (p Point) Advance(text string) Point {
	n := strings.Count(text, "\n")
	if n == 0 {
		return Point{Line: p.Line, Column: p.Column + len(text)}
	}
	return Point{Line: p.Line + n, Column: len(text) - strings.LastIndexByte(text, '\n') - 1}
}

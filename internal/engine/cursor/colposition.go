package cursor

import "fmt"

// ColKind selects how a ColPosition picks a column on a line.
type ColKind uint8

const (
	ColX             ColKind = iota // a visual x coordinate
	ColStart                        // the start of the line
	ColEnd                          // the end of the line
	ColFirstNonBlank                // the first non-blank character
)

// ColPosition is the horizontal target remembered across vertical motions.
// X is only meaningful for ColX.
type ColPosition struct {
	Kind ColKind
	X    float64
}

// AtX returns a hint for the visual x coordinate x.
func AtX(x float64) *ColPosition {
	return &ColPosition{Kind: ColX, X: x}
}

// AtStart returns a line start hint.
func AtStart() *ColPosition {
	return &ColPosition{Kind: ColStart}
}

// AtEnd returns a line end hint.
func AtEnd() *ColPosition {
	return &ColPosition{Kind: ColEnd}
}

// AtFirstNonBlank returns a first non-blank hint.
func AtFirstNonBlank() *ColPosition {
	return &ColPosition{Kind: ColFirstNonBlank}
}

// String returns a readable form of the hint.
func (p ColPosition) String() string {
	switch p.Kind {
	case ColX:
		return fmt.Sprintf("Col(%g)", p.X)
	case ColStart:
		return "Start"
	case ColEnd:
		return "End"
	default:
		return "FirstNonBlank"
	}
}

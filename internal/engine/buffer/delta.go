package buffer

import "fmt"

// Delta describes a single replacement applied to a buffer: the byte range
// [Start, End) of the old text was replaced by Text.
//
// Points are recorded at application time so consumers that work in
// row/column space (incremental parsers, line-indexed caches) do not need
// the old text to interpret the change.
type Delta struct {
	Start   int
	End     int
	Text    string
	OldText string

	StartPoint  Point
	OldEndPoint Point
	NewEndPoint Point
}

// NewEnd returns the end of the inserted text in the new buffer.
func (d Delta) NewEnd() int {
	return d.Start + len(d.Text)
}

// LenDelta returns the change in buffer length caused by this delta.
func (d Delta) LenDelta() int {
	return len(d.Text) - (d.End - d.Start)
}

// IsNoOp returns true if the delta does not change anything.
func (d Delta) IsNoOp() bool {
	return d.Start == d.End && d.Text == ""
}

// Transform maps an offset in the old text to the new text.
// Offsets inside the replaced range move to the end of the insertion when
// after is set, otherwise to its start.
func (d Delta) Transform(offset int, after bool) int {
	switch {
	case offset < d.Start:
		return offset
	case offset > d.End || (offset == d.End && d.End > d.Start):
		return offset + d.LenDelta()
	case after:
		return d.NewEnd()
	default:
		return d.Start
	}
}

// Inverse returns the delta that undoes d when applied to the new text.
func (d Delta) Inverse() Delta {
	return Delta{
		Start:       d.Start,
		End:         d.NewEnd(),
		Text:        d.OldText,
		OldText:     d.Text,
		StartPoint:  d.StartPoint,
		OldEndPoint: d.NewEndPoint,
		NewEndPoint: d.OldEndPoint,
	}
}

// String returns a human-readable representation of the delta.
func (d Delta) String() string {
	if d.Start == d.End {
		return fmt.Sprintf("Insert(%d, %q)", d.Start, d.Text)
	}
	if d.Text == "" {
		return fmt.Sprintf("Delete[%d, %d)", d.Start, d.End)
	}
	return fmt.Sprintf("Replace[%d, %d) with %q", d.Start, d.End, d.Text)
}

// InvalLines describes which lines a delta invalidated: InvalLineCount lines
// starting at StartLine were replaced by NewLineCount lines.
type InvalLines struct {
	StartLine      int
	InvalLineCount int
	NewLineCount   int
}

// DeltaInval pairs an applied delta with the lines it invalidated.
type DeltaInval struct {
	Delta Delta
	Inval InvalLines
}

package cursor

import (
	"fmt"

	"github.com/dshills/doccore/internal/engine/buffer"
)

// State is the modal state of a cursor: Normal, Visual or Insert.
type State interface {
	Mode() Mode
	isState()
}

// Normal is a block cursor resting on Offset.
type Normal struct {
	Offset int
}

// Visual is an anchored selection. Start stays fixed while motions move End.
type Visual struct {
	Start int
	End   int
	Kind  VisualMode
}

// Insert holds the carets or ranges being edited.
type Insert struct {
	Selection *Selection
}

func (Normal) Mode() Mode { return ModeNormal }
func (Visual) Mode() Mode { return ModeVisual }
func (Insert) Mode() Mode { return ModeInsert }

func (Normal) isState() {}
func (Visual) isState() {}
func (Insert) isState() {}

// Cursor is the modal cursor of a document.
type Cursor struct {
	State State

	// Horiz is the remembered horizontal target of vertical motions.
	Horiz *ColPosition

	// MotionMode is the operator waiting for a motion, if any.
	MotionMode *MotionMode
}

// New creates a cursor in the given state.
func New(state State) *Cursor {
	return &Cursor{State: state}
}

// Mode returns the cursor's mode.
func (c *Cursor) Mode() Mode {
	return c.State.Mode()
}

// IsInsert returns true if the cursor is in insert mode.
func (c *Cursor) IsInsert() bool {
	return c.State.Mode() == ModeInsert
}

// Offset returns the offset the cursor is displayed at: the Normal offset,
// the moving end of a Visual selection, or the caret of the last Insert
// region.
func (c *Cursor) Offset() int {
	switch s := c.State.(type) {
	case Normal:
		return s.Offset
	case Visual:
		return s.End
	case Insert:
		return s.Selection.Offset()
	}
	return 0
}

// SetNormal switches to normal mode at offset.
func (c *Cursor) SetNormal(offset int) {
	c.State = Normal{Offset: offset}
}

// SetInsert switches to insert mode with the given selection.
func (c *Cursor) SetInsert(sel *Selection) {
	c.State = Insert{Selection: sel}
}

// EditSelection returns the range an edit command applies to. In normal
// mode this is the grapheme under the cursor; in visual mode the selection
// including the character at its far end, widened to whole lines when
// linewise; in insert mode the selection itself.
func (c *Cursor) EditSelection(buf *buffer.Buffer) *Selection {
	switch s := c.State.(type) {
	case Normal:
		return RegionSelection(s.Offset, buf.NextGraphemeOffset(s.Offset, 1, buf.Len()))
	case Visual:
		lo, hi := s.Start, s.End
		if lo > hi {
			lo, hi = hi, lo
		}
		if s.Kind == VisualLinewise {
			start := buf.OffsetOfLine(buf.LineOfOffset(lo))
			end := buf.OffsetOfLine(buf.LineOfOffset(hi) + 1)
			return RegionSelection(start, end)
		}
		return RegionSelection(lo, buf.NextGraphemeOffset(hi, 1, buf.Len()))
	case Insert:
		return s.Selection
	}
	return NewSelection()
}

// ApplyDelta maps the cursor's offsets through an applied delta.
func (c *Cursor) ApplyDelta(d buffer.Delta) {
	switch s := c.State.(type) {
	case Normal:
		c.State = Normal{Offset: d.Transform(s.Offset, false)}
	case Visual:
		c.State = Visual{
			Start: d.Transform(s.Start, false),
			End:   d.Transform(s.End, false),
			Kind:  s.Kind,
		}
	case Insert:
		c.State = Insert{Selection: s.Selection.ApplyDelta(d)}
	}
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	switch s := c.State.(type) {
	case Normal:
		return fmt.Sprintf("Normal(%d)", s.Offset)
	case Visual:
		return fmt.Sprintf("Visual(%d->%d, %s)", s.Start, s.End, s.Kind)
	case Insert:
		return fmt.Sprintf("Insert%s", s.Selection)
	}
	return "Cursor(?)"
}

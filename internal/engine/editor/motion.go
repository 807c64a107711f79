package editor

import (
	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/engine/cursor"
)

// ExecuteMotionMode applies a pending operator to the range [start, end).
//
// When linewise is set the range is widened to the whole lines it touches,
// so a zero-width range covers the cursor's line. The cursor ends in normal
// mode; the caller clears the pending operator.
func (e *Editor) ExecuteMotionMode(c *cursor.Cursor, buf *buffer.Buffer, mm cursor.MotionMode, start, end int, linewise bool) ([]buffer.DeltaInval, error) {
	if start > end {
		start, end = end, start
	}
	start = max(start, 0)
	end = min(end, buf.Len())
	first, last := buf.LineOfOffset(start), buf.LineOfOffset(end)

	switch mm {
	case cursor.MotionDelete:
		return e.deleteMotion(c, buf, start, end, first, last, linewise)
	case cursor.MotionYank:
		e.yankMotion(c, buf, start, end, first, last, linewise)
		return nil, nil
	case cursor.MotionIndent:
		return e.shiftLines(c, buf, "indent", first, last, false)
	case cursor.MotionOutdent:
		return e.shiftLines(c, buf, "outdent", first, last, true)
	}
	return nil, nil
}

func (e *Editor) deleteMotion(c *cursor.Cursor, buf *buffer.Buffer, start, end, first, last int, linewise bool) ([]buffer.DeltaInval, error) {
	before := selectionOf(c)
	data := RegisterData{Content: buf.Slice(start, end)}
	if linewise {
		data = RegisterData{Content: linesText(buf, first, last), Mode: cursor.VisualLinewise}
		start, end = lineRange(buf, first, last)
	}
	if start == end {
		return nil, nil
	}
	e.register.Add(RegisterDelete, data)

	di, err := buf.Edit(start, end, "")
	if err != nil {
		return nil, err
	}
	if linewise {
		c.SetNormal(buf.FirstNonBlankCharacterOnLine(buf.LineOfOffset(start)))
	} else {
		c.SetNormal(normalOffset(buf, start))
	}
	c.Horiz = nil

	deltas := []buffer.DeltaInval{di}
	e.record("delete", deltas, before)
	return deltas, nil
}

func (e *Editor) yankMotion(c *cursor.Cursor, buf *buffer.Buffer, start, end, first, last int, linewise bool) {
	if linewise {
		e.register.Add(RegisterYank, RegisterData{Content: linesText(buf, first, last), Mode: cursor.VisualLinewise})
		if buf.LineOfOffset(c.Offset()) != first {
			c.SetNormal(buf.FirstNonBlankCharacterOnLine(first))
		}
		return
	}
	if start == end {
		return
	}
	e.register.Add(RegisterYank, RegisterData{Content: buf.Slice(start, end)})
	c.SetNormal(normalOffset(buf, start))
}

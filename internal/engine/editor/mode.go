package editor

import (
	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/engine/cursor"
)

// switchMode handles the commands that only change the cursor's mode.
// Entering insert mode opens an undo group that normal mode closes, so one
// insert session undoes as a unit.
func (e *Editor) switchMode(c *cursor.Cursor, buf *buffer.Buffer, cmd Command) {
	offset := c.Offset()

	switch cmd {
	case NormalMode:
		e.history.EndGroup()
		switch s := c.State.(type) {
		case cursor.Insert:
			offset = s.Selection.MinOffset()
			lineStart := buf.OffsetOfLine(buf.LineOfOffset(offset))
			offset = buf.PrevGraphemeOffset(offset, 1, lineStart)
		case cursor.Visual:
			offset = min(s.End, buf.OffsetLineEnd(s.End, false))
		}
		c.SetNormal(normalOffset(buf, offset))
		c.MotionMode = nil
		c.Horiz = nil
		return
	case InsertMode:
		if v, ok := c.State.(cursor.Visual); ok {
			offset = min(v.Start, v.End)
		}
	case Append:
		if v, ok := c.State.(cursor.Visual); ok {
			offset = max(v.Start, v.End)
		}
		offset = buf.NextGraphemeOffset(offset, 1, buf.OffsetLineEnd(offset, true))
	case AppendEndOfLine:
		offset = buf.OffsetLineEnd(offset, true)
	case InsertFirstNonBlank:
		offset = buf.FirstNonBlankCharacterOnLine(buf.LineOfOffset(offset))
	case ToggleVisual, ToggleLinewiseVisual:
		kind := cursor.VisualCharwise
		if cmd == ToggleLinewiseVisual {
			kind = cursor.VisualLinewise
		}
		e.toggleVisual(c, buf, kind)
		return
	}

	if c.IsInsert() {
		return
	}
	e.history.BeginGroup("insert")
	c.SetInsert(cursor.CaretSelection(offset))
	c.MotionMode = nil
	c.Horiz = nil
}

// toggleVisual enters visual mode of the given kind, switches kind, or
// leaves visual mode when it is already of that kind.
func (e *Editor) toggleVisual(c *cursor.Cursor, buf *buffer.Buffer, kind cursor.VisualMode) {
	switch s := c.State.(type) {
	case cursor.Normal:
		c.State = cursor.Visual{Start: s.Offset, End: s.Offset, Kind: kind}
	case cursor.Visual:
		if s.Kind == kind {
			c.SetNormal(normalOffset(buf, s.End))
			return
		}
		c.State = cursor.Visual{Start: s.Start, End: s.End, Kind: kind}
	case cursor.Insert:
		e.history.EndGroup()
		r, _ := s.Selection.Last()
		c.State = cursor.Visual{Start: r.Start, End: r.End, Kind: kind}
	}
	c.MotionMode = nil
}

// openLine inserts an empty line below or above the cursor's line, indented
// like it, and enters insert mode on it.
func (e *Editor) openLine(c *cursor.Cursor, buf *buffer.Buffer, above bool) ([]buffer.DeltaInval, error) {
	before := selectionOf(c)
	line := buf.LineOfOffset(c.Offset())
	lineStart := buf.OffsetOfLine(line)
	indent := leadingIndent(buf, lineStart+buf.LineLen(line))
	nl := buf.LineEnding().Sequence()

	var (
		pos, caret int
		text       string
	)
	if above {
		pos, text = lineStart, indent+nl
		caret = lineStart + len(indent)
	} else {
		pos, text = lineStart+buf.LineLen(line), nl+indent
		caret = pos + len(text)
	}

	di, err := buf.Insert(pos, text)
	if err != nil {
		return nil, err
	}
	deltas := []buffer.DeltaInval{di}

	e.history.BeginGroup("insert")
	e.record("open-line", deltas, before)
	c.SetInsert(cursor.CaretSelection(caret))
	c.MotionMode = nil
	c.Horiz = nil
	return deltas, nil
}

func (e *Editor) undo(c *cursor.Cursor, buf *buffer.Buffer) ([]buffer.DeltaInval, error) {
	e.history.EndGroup()
	deltas, entry, err := e.history.Undo(buf)
	if err != nil {
		return deltas, err
	}
	offset := minStart(deltas)
	if entry.Before != nil && !entry.Before.IsEmpty() {
		offset = entry.Before.MinOffset()
	}
	e.placeAfterHistory(c, buf, offset)
	return deltas, nil
}

func (e *Editor) redo(c *cursor.Cursor, buf *buffer.Buffer) ([]buffer.DeltaInval, error) {
	e.history.EndGroup()
	deltas, _, err := e.history.Redo(buf)
	if err != nil {
		return deltas, err
	}
	e.placeAfterHistory(c, buf, minStart(deltas))
	return deltas, nil
}

// placeAfterHistory puts the cursor at offset after an undo or redo,
// keeping insert mode if the cursor was in it.
func (e *Editor) placeAfterHistory(c *cursor.Cursor, buf *buffer.Buffer, offset int) {
	offset = min(offset, buf.Len())
	if c.IsInsert() {
		c.SetInsert(cursor.CaretSelection(offset))
	} else {
		c.SetNormal(normalOffset(buf, offset))
	}
	c.Horiz = nil
	c.MotionMode = nil
}

func minStart(deltas []buffer.DeltaInval) int {
	if len(deltas) == 0 {
		return 0
	}
	m := deltas[0].Delta.Start
	for _, di := range deltas[1:] {
		m = min(m, di.Delta.Start)
	}
	return m
}

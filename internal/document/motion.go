package document

import (
	"github.com/dshills/doccore/internal/engine/cursor"
	"github.com/dshills/doccore/internal/engine/movement"
	"github.com/dshills/doccore/internal/engine/word"
)

// LineHorizCol returns the column on line that a horizontal hint selects.
// With caret set the column may be one past the last character.
func (d *Document) LineHorizCol(line int, horiz cursor.ColPosition, caret bool) int {
	switch horiz.Kind {
	case cursor.ColX:
		col := d.GetTextLayout(line).HitTestPoint(horiz.X)
		return min(col, d.buf.LineEndCol(line, caret))
	case cursor.ColEnd:
		return d.buf.LineEndCol(line, caret)
	case cursor.ColFirstNonBlank:
		return d.buf.FirstNonBlankCol(line)
	}
	return 0
}

// MoveOffset resolves a movement from offset and returns the new offset and
// the horizontal hint to remember. Vertical movements reuse horiz when it
// is set. Movements that find nothing return offset unchanged.
func (d *Document) MoveOffset(offset int, horiz *cursor.ColPosition, count int, m movement.Movement, mode cursor.Mode) (int, *cursor.ColPosition) {
	buf := d.buf
	offset = max(0, min(offset, buf.Len()))
	count = max(count, 1)

	switch m.Kind {
	case movement.Left:
		limit := 0
		if mode != cursor.ModeInsert {
			limit = buf.OffsetOfLine(buf.LineOfOffset(offset))
		}
		return buf.PrevGraphemeOffset(offset, count, limit), nil

	case movement.Right:
		limit := buf.Len()
		if mode != cursor.ModeInsert {
			limit = buf.OffsetLineEnd(offset, false)
		}
		return buf.NextGraphemeOffset(offset, count, limit), nil

	case movement.Up:
		line := max(buf.LineOfOffset(offset)-count, 0)
		return d.moveToLine(offset, line, horiz, mode)

	case movement.Down:
		line := min(buf.LineOfOffset(offset)+count, buf.LastLine())
		return d.moveToLine(offset, line, horiz, mode)

	case movement.Line:
		var line int
		switch m.Line.Kind {
		case movement.LineFirst:
			line = 0
		case movement.LineLast:
			line = buf.LastLine()
		default:
			line = max(0, min(m.Line.N-1, buf.LastLine()))
		}
		return d.moveToLine(offset, line, horiz, mode)

	case movement.DocumentStart:
		return 0, cursor.AtStart()

	case movement.DocumentEnd:
		return buf.OffsetLineEnd(buf.Len(), mode != cursor.ModeNormal), cursor.AtEnd()

	case movement.FirstNonBlank:
		return buf.FirstNonBlankCharacterOnLine(buf.LineOfOffset(offset)), cursor.AtFirstNonBlank()

	case movement.StartOfLine:
		return buf.OffsetOfLine(buf.LineOfOffset(offset)), cursor.AtStart()

	case movement.EndOfLine:
		return buf.OffsetLineEnd(offset, mode != cursor.ModeNormal), cursor.AtEnd()

	case movement.Offset:
		target := max(0, min(m.N+1, buf.Len()))
		return buf.PrevGraphemeOffset(target, 1, 0), nil

	case movement.WordForward:
		if next, ok := word.NewScanner(buf.Text(), offset).NextBoundary(); ok {
			return next, nil
		}
		return offset, nil

	case movement.WordBackward:
		if prev, ok := word.NewScanner(buf.Text(), offset).PrevBoundary(); ok {
			return prev, nil
		}
		return offset, nil

	case movement.WordEndForward:
		end, ok := word.NewScanner(buf.Text(), offset).EndBoundary()
		if !ok {
			return offset, nil
		}
		if mode != cursor.ModeInsert {
			end = buf.PrevGraphemeOffset(end, 1, 0)
		}
		return end, nil

	case movement.NextUnmatched:
		if d.hasMatcher() {
			if next, ok := d.syntax.FindTag(offset, false, m.Char); ok {
				return next, nil
			}
			return offset, nil
		}
		if next, ok := word.NewScanner(buf.Text(), offset).NextUnmatched(m.Char); ok {
			return next - 1, nil
		}
		return offset, nil

	case movement.PreviousUnmatched:
		if d.hasMatcher() {
			if prev, ok := d.syntax.FindTag(offset, true, m.Char); ok {
				return prev, nil
			}
			return offset, nil
		}
		if prev, ok := word.NewScanner(buf.Text(), offset).PreviousUnmatched(m.Char); ok {
			return prev, nil
		}
		return offset, nil

	case movement.MatchPairs:
		if d.hasMatcher() {
			if pair, ok := d.syntax.FindMatchingPair(offset); ok {
				return pair, nil
			}
			return offset, nil
		}
		if pair, ok := word.NewScanner(buf.Text(), offset).MatchPairs(); ok {
			return pair, nil
		}
		return offset, nil
	}

	return offset, nil
}

// moveToLine keeps the horizontal target while changing lines. Without a
// hint the target is the current visual x position.
func (d *Document) moveToLine(offset, line int, horiz *cursor.ColPosition, mode cursor.Mode) (int, *cursor.ColPosition) {
	var h cursor.ColPosition
	if horiz != nil {
		h = *horiz
	} else {
		h = cursor.ColPosition{Kind: cursor.ColX, X: d.PointOfOffset(offset).X}
	}
	col := d.LineHorizCol(line, h, mode != cursor.ModeNormal)
	return d.buf.OffsetOfLineCol(line, col), &h
}

// hasMatcher reports whether bracket motions can use the parse tree.
func (d *Document) hasMatcher() bool {
	return d.syntax != nil && d.syntax.HasTree()
}

// MoveCursor moves the cursor by count movements. In normal mode with a
// pending operator the operator runs over the range the movement covers
// and is cleared. In visual mode only the moving end follows. In insert
// mode every region moves on its own; modify extends the regions instead
// of collapsing them.
func (d *Document) MoveCursor(c *cursor.Cursor, m movement.Movement, count int, modify bool) {
	switch s := c.State.(type) {
	case cursor.Normal:
		newOffset, horiz := d.MoveOffset(s.Offset, c.Horiz, count, m, cursor.ModeNormal)
		if c.MotionMode == nil {
			c.State = cursor.Normal{Offset: newOffset}
			c.Horiz = horiz
			return
		}

		mm := *c.MotionMode
		start, end := s.Offset, newOffset
		switch m.Kind {
		case movement.EndOfLine, movement.WordEndForward:
			end = d.nextGrapheme(newOffset)
		case movement.MatchPairs:
			switch {
			case newOffset > s.Offset:
				end = d.nextGrapheme(newOffset)
			case newOffset < s.Offset:
				start, end = newOffset, d.nextGrapheme(s.Offset)
			}
		}
		d.executeMotionMode(c, mm, start, end, m.IsVertical())
		c.MotionMode = nil

	case cursor.Visual:
		newOffset, horiz := d.MoveOffset(s.End, c.Horiz, count, m, cursor.ModeVisual)
		c.State = cursor.Visual{Start: s.Start, End: newOffset, Kind: s.Kind}
		c.Horiz = horiz

	case cursor.Insert:
		sel := cursor.NewSelection()
		for _, r := range s.Selection.Regions() {
			newOffset, horiz := d.MoveOffset(r.End, r.Horiz, count, m, cursor.ModeInsert)
			start := newOffset
			if modify {
				start = r.Start
			}
			sel.AddRegion(cursor.SelRegion{Start: start, End: newOffset, Horiz: horiz})
		}
		c.SetInsert(sel)
	}
}

// nextGrapheme is the offset one grapheme to the right, allowed to pass the
// end of the line so inclusive ranges cover the last character.
func (d *Document) nextGrapheme(offset int) int {
	next, _ := d.MoveOffset(offset, nil, 1, movement.Of(movement.Right), cursor.ModeInsert)
	return next
}

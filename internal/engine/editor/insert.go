package editor

import (
	"strings"

	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/engine/cursor"
)

// Insert replaces every region of an insert-mode selection with s and leaves
// a caret after each insertion.
func (e *Editor) Insert(c *cursor.Cursor, buf *buffer.Buffer, s string) ([]buffer.DeltaInval, error) {
	if s == "" {
		return nil, nil
	}
	return e.editRegions(c, buf, "insert", func(r cursor.SelRegion) (edit, bool) {
		return edit{start: r.Min(), end: r.Max(), text: s}, true
	})
}

// editRegions applies one edit per region of an insert-mode selection. fn
// returns false for regions it leaves alone. Every region ends up as a
// caret: at the end of its edit, or where its caret was.
func (e *Editor) editRegions(c *cursor.Cursor, buf *buffer.Buffer, name string, fn func(cursor.SelRegion) (edit, bool)) ([]buffer.DeltaInval, error) {
	ins, ok := c.State.(cursor.Insert)
	if !ok {
		return nil, ErrNotInsertMode
	}
	before := ins.Selection.Clone()
	regions := ins.Selection.Regions()

	var edits []edit
	owner := make([]int, len(regions)) // index into edits, or -1
	for i, r := range regions {
		owner[i] = -1
		if ed, ok := fn(r); ok {
			owner[i] = len(edits)
			edits = append(edits, ed)
		}
	}

	deltas, applied, err := applyEdits(buf, edits)

	sel := cursor.NewSelection()
	seen := make(map[int]bool, len(regions))
	for i, r := range regions {
		off := r.End
		if j := owner[i]; j >= 0 && applied[j] {
			off = edits[j].end
		}
		off = transformAll(off, deltas, true)
		if seen[off] {
			continue
		}
		seen[off] = true
		sel.AddRegion(cursor.Caret(off))
	}
	c.SetInsert(sel)
	c.Horiz = nil

	e.record(name, deltas, before)
	return deltas, err
}

// insertNewLine breaks the line at each region, carrying the indentation of
// the line being broken onto the new one.
func (e *Editor) insertNewLine(c *cursor.Cursor, buf *buffer.Buffer) ([]buffer.DeltaInval, error) {
	nl := buf.LineEnding().Sequence()
	return e.editRegions(c, buf, "insert-new-line", func(r cursor.SelRegion) (edit, bool) {
		return edit{start: r.Min(), end: r.Max(), text: nl + leadingIndent(buf, r.Min())}, true
	})
}

// deleteBackwardRegions removes the selected text of each region, or the
// grapheme before each caret. A caret inside space indentation removes back
// to the previous indent stop.
func (e *Editor) deleteBackwardRegions(c *cursor.Cursor, buf *buffer.Buffer) ([]buffer.DeltaInval, error) {
	unit := buf.IndentUnit()
	return e.editRegions(c, buf, "delete-backward", func(r cursor.SelRegion) (edit, bool) {
		if !r.IsCaret() {
			return edit{start: r.Min(), end: r.Max()}, true
		}
		if r.End == 0 {
			return edit{}, false
		}
		start := buf.PrevGraphemeOffset(r.End, 1, 0)
		if n := indentStop(buf, r.End, unit); n > 1 {
			start = r.End - n
		}
		return edit{start: start, end: r.End}, true
	})
}

// indentStop returns how many spaces lie between offset and the previous
// indent stop, when offset sits inside the line's leading spaces.
func indentStop(buf *buffer.Buffer, offset int, unit string) int {
	if unit == "" || strings.Trim(unit, " ") != "" {
		return 0
	}
	indent := leadingIndent(buf, offset)
	line := buf.LineOfOffset(offset)
	col := offset - buf.OffsetOfLine(line)
	if col == 0 || col != len(indent) || strings.Trim(indent, " ") != "" {
		return 0
	}
	n := col % len(unit)
	if n == 0 {
		n = len(unit)
	}
	return n
}

// deleteForwardRegions removes the selected text of each region, or the
// grapheme after each caret.
func (e *Editor) deleteForwardRegions(c *cursor.Cursor, buf *buffer.Buffer) ([]buffer.DeltaInval, error) {
	return e.editRegions(c, buf, "delete-forward", func(r cursor.SelRegion) (edit, bool) {
		if !r.IsCaret() {
			return edit{start: r.Min(), end: r.Max()}, true
		}
		end := buf.NextGraphemeOffset(r.End, 1, buf.Len())
		if end == r.End {
			return edit{}, false
		}
		return edit{start: r.End, end: end}, true
	})
}

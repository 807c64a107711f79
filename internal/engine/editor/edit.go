package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/engine/cursor"
)

// DoEdit runs an edit command against the cursor and buffer and returns the
// deltas it applied, in application order. Commands that only move the
// cursor or change its mode return no deltas.
func (e *Editor) DoEdit(c *cursor.Cursor, buf *buffer.Buffer, cmd Command) ([]buffer.DeltaInval, error) {
	switch cmd {
	case InsertNewLine:
		if !c.IsInsert() {
			return nil, nil
		}
		return e.insertNewLine(c, buf)
	case InsertTab:
		if !c.IsInsert() {
			return nil, nil
		}
		return e.editRegions(c, buf, "insert-tab", func(r cursor.SelRegion) (edit, bool) {
			return edit{start: r.Min(), end: r.Max(), text: buf.IndentUnit()}, true
		})
	case DeleteBackward:
		if c.IsInsert() {
			return e.deleteBackwardRegions(c, buf)
		}
		return e.deleteBackwardNormal(c, buf)
	case DeleteForward:
		if c.IsInsert() {
			return e.deleteForwardRegions(c, buf)
		}
		return e.deleteSelection(c, buf, "delete-forward", true)
	case DeleteSelection:
		return e.deleteSelection(c, buf, "delete-selection", true)
	case Yank:
		e.register.Add(RegisterYank, e.selectedData(c, buf))
		e.leaveVisual(c, buf)
		return nil, nil
	case Paste:
		return e.DoPaste(c, buf, e.register.Unnamed, false)
	case PasteBefore:
		return e.DoPaste(c, buf, e.register.Unnamed, true)
	case ClipboardCopy:
		e.copyToClipboard(c, buf)
		e.leaveVisual(c, buf)
		return nil, nil
	case ClipboardCut:
		e.copyToClipboard(c, buf)
		return e.deleteSelection(c, buf, "clipboard-cut", false)
	case ClipboardPaste:
		if e.clipboard == nil {
			return nil, nil
		}
		s, ok := e.clipboard.GetString()
		if !ok {
			return nil, nil
		}
		return e.DoPaste(c, buf, RegisterData{Content: s, Mode: cursor.VisualCharwise}, false)
	case IndentLine:
		return e.indentLines(c, buf, false)
	case OutdentLine:
		return e.indentLines(c, buf, true)
	case JoinLines:
		return e.joinLines(c, buf)
	case NormalMode, InsertMode, Append, AppendEndOfLine, InsertFirstNonBlank,
		ToggleVisual, ToggleLinewiseVisual:
		e.switchMode(c, buf, cmd)
		return nil, nil
	case NewLineBelow:
		return e.openLine(c, buf, false)
	case NewLineAbove:
		return e.openLine(c, buf, true)
	case Undo:
		return e.undo(c, buf)
	case Redo:
		return e.redo(c, buf)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

// selectedData returns the text a yank or copy takes from the cursor.
func (e *Editor) selectedData(c *cursor.Cursor, buf *buffer.Buffer) RegisterData {
	switch s := c.State.(type) {
	case cursor.Visual:
		if s.Kind == cursor.VisualLinewise {
			first, last := visualLines(buf, s)
			return RegisterData{Content: linesText(buf, first, last), Mode: cursor.VisualLinewise}
		}
	case cursor.Insert:
		parts := make([]string, 0, s.Selection.Len())
		for _, r := range s.Selection.Regions() {
			if !r.IsCaret() {
				parts = append(parts, buf.Slice(r.Min(), r.Max()))
			}
		}
		return RegisterData{Content: strings.Join(parts, "\n")}
	}
	r, _ := c.EditSelection(buf).Last()
	return RegisterData{Content: buf.Slice(r.Min(), r.Max())}
}

func (e *Editor) copyToClipboard(c *cursor.Cursor, buf *buffer.Buffer) {
	if e.clipboard == nil {
		return
	}
	if data := e.selectedData(c, buf); data.Content != "" {
		e.clipboard.PutString(data.Content)
	}
}

// visualLines returns the first and last line a visual selection touches.
func visualLines(buf *buffer.Buffer, v cursor.Visual) (int, int) {
	first, last := buf.LineOfOffset(v.Start), buf.LineOfOffset(v.End)
	if first > last {
		first, last = last, first
	}
	return first, last
}

// leaveVisual returns a visual cursor to normal mode at the selection start.
func (e *Editor) leaveVisual(c *cursor.Cursor, buf *buffer.Buffer) {
	if v, ok := c.State.(cursor.Visual); ok {
		start := v.Start
		if v.End < start {
			start = v.End
		}
		if v.Kind == cursor.VisualLinewise {
			start = buf.OffsetOfLine(buf.LineOfOffset(start))
		}
		c.SetNormal(normalOffset(buf, start))
	}
}

// deleteSelection removes the edit selection of the cursor. Outside insert
// mode the cursor ends up in normal mode at the start of the removed text;
// toRegister stores the removed text in the register.
func (e *Editor) deleteSelection(c *cursor.Cursor, buf *buffer.Buffer, name string, toRegister bool) ([]buffer.DeltaInval, error) {
	if c.IsInsert() {
		return e.editRegions(c, buf, name, func(r cursor.SelRegion) (edit, bool) {
			return edit{start: r.Min(), end: r.Max()}, !r.IsCaret()
		})
	}

	before := selectionOf(c)
	data := e.selectedData(c, buf)
	var start, end int
	if v, ok := c.State.(cursor.Visual); ok && v.Kind == cursor.VisualLinewise {
		first, last := visualLines(buf, v)
		start, end = lineRange(buf, first, last)
	} else {
		r, _ := c.EditSelection(buf).Last()
		start, end = r.Min(), r.Max()
		if n, ok := c.State.(cursor.Normal); ok {
			end = min(end, buf.OffsetLineEnd(n.Offset, true))
		}
	}
	if start == end {
		e.leaveVisual(c, buf)
		return nil, nil
	}
	if toRegister {
		e.register.Add(RegisterDelete, data)
	}

	di, err := buf.Edit(start, end, "")
	if err != nil {
		return nil, err
	}
	if data.IsLinewise() {
		c.SetNormal(buf.FirstNonBlankCharacterOnLine(buf.LineOfOffset(start)))
	} else {
		c.SetNormal(normalOffset(buf, start))
	}
	c.Horiz = nil

	deltas := []buffer.DeltaInval{di}
	e.record(name, deltas, before)
	return deltas, nil
}

// deleteBackwardNormal removes the grapheme before a normal-mode cursor,
// staying on the current line. In visual mode it deletes the selection.
func (e *Editor) deleteBackwardNormal(c *cursor.Cursor, buf *buffer.Buffer) ([]buffer.DeltaInval, error) {
	n, ok := c.State.(cursor.Normal)
	if !ok {
		return e.deleteSelection(c, buf, "delete-backward", true)
	}
	lineStart := buf.OffsetOfLine(buf.LineOfOffset(n.Offset))
	start := buf.PrevGraphemeOffset(n.Offset, 1, lineStart)
	if start == n.Offset {
		return nil, nil
	}
	before := selectionOf(c)
	e.register.Add(RegisterDelete, RegisterData{Content: buf.Slice(start, n.Offset)})
	di, err := buf.Edit(start, n.Offset, "")
	if err != nil {
		return nil, err
	}
	c.SetNormal(normalOffset(buf, start))
	deltas := []buffer.DeltaInval{di}
	e.record("delete-backward", deltas, before)
	return deltas, nil
}

// cursorLines returns the lines an indent or join applies to.
func cursorLines(c *cursor.Cursor, buf *buffer.Buffer) (int, int) {
	switch s := c.State.(type) {
	case cursor.Visual:
		return visualLines(buf, s)
	case cursor.Insert:
		return buf.LineOfOffset(s.Selection.MinOffset()), buf.LineOfOffset(s.Selection.MaxOffset())
	}
	line := buf.LineOfOffset(c.Offset())
	return line, line
}

// indentLines indents or outdents every line touched by the cursor.
func (e *Editor) indentLines(c *cursor.Cursor, buf *buffer.Buffer, outdent bool) ([]buffer.DeltaInval, error) {
	first, last := cursorLines(c, buf)
	name := "indent"
	if outdent {
		name = "outdent"
	}
	return e.shiftLines(c, buf, name, first, last, outdent)
}

// shiftLines adds or removes one indent unit on lines first..last. Empty
// lines are not indented. Outside insert mode the cursor lands in normal
// mode on the first non-blank character of the first line.
func (e *Editor) shiftLines(c *cursor.Cursor, buf *buffer.Buffer, name string, first, last int, outdent bool) ([]buffer.DeltaInval, error) {
	before := selectionOf(c)
	var edits []edit
	for line := first; line <= last; line++ {
		if ed, ok := shiftEdit(buf, line, outdent); ok {
			edits = append(edits, ed)
		}
	}

	deltas, _, err := applyEdits(buf, edits)
	if c.IsInsert() {
		for _, di := range deltas {
			c.ApplyDelta(di.Delta)
		}
	} else {
		c.SetNormal(buf.FirstNonBlankCharacterOnLine(first))
		c.Horiz = nil
	}
	e.record(name, deltas, before)
	return deltas, err
}

// shiftEdit returns the edit that indents or outdents one line.
func shiftEdit(buf *buffer.Buffer, line int, outdent bool) (edit, bool) {
	start := buf.OffsetOfLine(line)
	content := buf.LineContent(line)
	unit := buf.IndentUnit()

	if !outdent {
		if content == "" {
			return edit{}, false
		}
		return edit{start: start, end: start, text: unit}, true
	}

	if strings.HasPrefix(content, "\t") {
		return edit{start: start, end: start + 1}, true
	}
	width := len(unit)
	if unit == "\t" || width == 0 {
		width = buf.TabWidth()
	}
	n := len(content) - len(strings.TrimLeft(content, " "))
	if n > width {
		n = width
	}
	if n == 0 {
		return edit{}, false
	}
	return edit{start: start, end: start + n}, true
}

// joinLines joins each line touched by the cursor with the line after it,
// replacing the line break and the next line's indentation with one space.
// A single line is joined with the next.
func (e *Editor) joinLines(c *cursor.Cursor, buf *buffer.Buffer) ([]buffer.DeltaInval, error) {
	first, last := cursorLines(c, buf)
	if last == first {
		last++
	}
	if last > buf.LastLine() {
		last = buf.LastLine()
	}
	if first >= last {
		return nil, nil
	}

	before := selectionOf(c)
	edits := make([]edit, 0, last-first)
	for line := first; line < last; line++ {
		start := buf.OffsetOfLine(line) + buf.LineLen(line)
		end := buf.FirstNonBlankCharacterOnLine(line + 1)
		sep := " "
		if strings.TrimSpace(buf.LineContent(line)) == "" || end == buf.OffsetOfLine(line+1)+buf.LineLen(line+1) {
			sep = ""
		}
		edits = append(edits, edit{start: start, end: end, text: sep})
	}

	deltas, _, err := applyEdits(buf, edits)
	if c.IsInsert() {
		for _, di := range deltas {
			c.ApplyDelta(di.Delta)
		}
	} else {
		// Edits above the first join do not move it.
		joint := edits[0].start
		c.SetNormal(normalOffset(buf, joint))
		c.Horiz = nil
	}
	e.record("join-lines", deltas, before)
	return deltas, err
}

package editor

import (
	"strings"

	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/engine/cursor"
)

// DoPaste inserts register data at the cursor.
//
// In insert mode the data replaces every region. In visual mode it replaces
// the selection. In normal mode charwise data goes after the cursor (before
// it when before is set) and the cursor lands on its last character;
// linewise data goes on its own lines below (or above) the cursor's line and
// the cursor lands on the first non-blank character of the pasted text.
func (e *Editor) DoPaste(c *cursor.Cursor, buf *buffer.Buffer, data RegisterData, before bool) ([]buffer.DeltaInval, error) {
	if data.Content == "" {
		return nil, nil
	}

	switch s := c.State.(type) {
	case cursor.Insert:
		return e.editRegions(c, buf, "paste", func(r cursor.SelRegion) (edit, bool) {
			return edit{start: r.Min(), end: r.Max(), text: data.Content}, true
		})
	case cursor.Visual:
		return e.pasteOverVisual(c, buf, s, data)
	case cursor.Normal:
		if data.IsLinewise() {
			return e.pasteLines(c, buf, s.Offset, data.Content, before)
		}
		return e.pasteChars(c, buf, s.Offset, data.Content, before)
	}
	return nil, nil
}

func (e *Editor) pasteChars(c *cursor.Cursor, buf *buffer.Buffer, offset int, content string, before bool) ([]buffer.DeltaInval, error) {
	prev := selectionOf(c)
	pos := offset
	if !before {
		pos = buf.NextGraphemeOffset(offset, 1, buf.OffsetLineEnd(offset, true))
	}
	di, err := buf.Insert(pos, content)
	if err != nil {
		return nil, err
	}
	end := di.Delta.NewEnd()
	c.SetNormal(normalOffset(buf, buf.PrevGraphemeOffset(end, 1, pos)))
	c.Horiz = nil

	deltas := []buffer.DeltaInval{di}
	e.record("paste", deltas, prev)
	return deltas, nil
}

func (e *Editor) pasteLines(c *cursor.Cursor, buf *buffer.Buffer, offset int, content string, before bool) ([]buffer.DeltaInval, error) {
	prev := selectionOf(c)
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	line := buf.LineOfOffset(offset)

	var pos, target int
	switch {
	case before:
		pos, target = buf.OffsetOfLine(line), line
	case line < buf.LastLine():
		pos, target = buf.OffsetOfLine(line+1), line+1
	default:
		// No line ending follows the last line; lead with one instead.
		pos, target = buf.Len(), line+1
		content = "\n" + strings.TrimSuffix(content, "\n")
	}

	di, err := buf.Insert(pos, content)
	if err != nil {
		return nil, err
	}
	c.SetNormal(buf.FirstNonBlankCharacterOnLine(target))
	c.Horiz = nil

	deltas := []buffer.DeltaInval{di}
	e.record("paste", deltas, prev)
	return deltas, nil
}

func (e *Editor) pasteOverVisual(c *cursor.Cursor, buf *buffer.Buffer, v cursor.Visual, data RegisterData) ([]buffer.DeltaInval, error) {
	prev := selectionOf(c)
	var start, end int
	if v.Kind == cursor.VisualLinewise {
		first, last := visualLines(buf, v)
		start, end = buf.OffsetOfLine(first), buf.OffsetOfLine(last+1)
	} else {
		r, _ := c.EditSelection(buf).Last()
		start, end = r.Min(), r.Max()
	}

	content := data.Content
	if v.Kind == cursor.VisualLinewise && !data.IsLinewise() && strings.HasSuffix(buf.Slice(start, end), "\n") {
		content += "\n"
	}

	di, err := buf.Edit(start, end, content)
	if err != nil {
		return nil, err
	}
	c.SetNormal(normalOffset(buf, start))
	c.Horiz = nil

	deltas := []buffer.DeltaInval{di}
	e.record("paste", deltas, prev)
	return deltas, nil
}

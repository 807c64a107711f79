package editor

import (
	"sort"
	"strings"

	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/engine/cursor"
	"github.com/dshills/doccore/internal/engine/history"
)

// Editor applies edit commands to a buffer and its cursor.
type Editor struct {
	history   *history.History
	register  *Register
	clipboard Clipboard
}

// Option configures an Editor.
type Option func(*Editor)

// WithClipboard sets the clipboard used by the clipboard commands.
// Without one those commands do nothing.
func WithClipboard(c Clipboard) Option {
	return func(e *Editor) {
		e.clipboard = c
	}
}

// WithHistory sets the undo history.
func WithHistory(h *history.History) Option {
	return func(e *Editor) {
		if h != nil {
			e.history = h
		}
	}
}

// New creates an editor.
func New(opts ...Option) *Editor {
	e := &Editor{
		history:  history.New(history.DefaultMaxEntries),
		register: &Register{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// History returns the undo history.
func (e *Editor) History() *history.History {
	return e.history
}

// Register returns the register filled by deletes and yanks.
func (e *Editor) Register() *Register {
	return e.register
}

// edit is one replacement computed against the current buffer.
type edit struct {
	start, end int
	text       string
}

// applyEdits applies edits from the highest offset down. An edit that
// overlaps one already applied is skipped. The returned slice maps each
// input edit to whether it was applied.
func applyEdits(buf *buffer.Buffer, edits []edit) ([]buffer.DeltaInval, []bool, error) {
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edits[order[a]].start > edits[order[b]].start
	})

	applied := make([]bool, len(edits))
	out := make([]buffer.DeltaInval, 0, len(edits))
	floor := buf.Len() + 1
	lastInsert := false
	for _, i := range order {
		ed := edits[i]
		insert := ed.start == ed.end
		if ed.end > floor || (insert && lastInsert && ed.start == floor) {
			continue
		}
		if insert && ed.text == "" {
			continue
		}
		di, err := buf.Edit(ed.start, ed.end, ed.text)
		if err != nil {
			return out, applied, err
		}
		out = append(out, di)
		applied[i] = true
		floor = ed.start
		lastInsert = insert
	}
	return out, applied, nil
}

// transformAll maps an offset through deltas in application order.
func transformAll(offset int, deltas []buffer.DeltaInval, after bool) int {
	for _, di := range deltas {
		offset = di.Delta.Transform(offset, after)
	}
	return offset
}

// record pushes an undo entry for deltas.
func (e *Editor) record(name string, deltas []buffer.DeltaInval, before *cursor.Selection) {
	if len(deltas) == 0 {
		return
	}
	ds := make([]buffer.Delta, len(deltas))
	for i, di := range deltas {
		ds[i] = di.Delta
	}
	e.history.Push(history.Entry{Name: name, Deltas: ds, Before: before})
}

// selectionOf returns the cursor's current selection for undo bookkeeping.
func selectionOf(c *cursor.Cursor) *cursor.Selection {
	switch s := c.State.(type) {
	case cursor.Normal:
		return cursor.CaretSelection(s.Offset)
	case cursor.Visual:
		return cursor.RegionSelection(s.Start, s.End)
	case cursor.Insert:
		return s.Selection.Clone()
	}
	return cursor.NewSelection()
}

// normalOffset clamps offset to a position a normal-mode cursor may rest on.
func normalOffset(buf *buffer.Buffer, offset int) int {
	if offset > buf.Len() {
		offset = buf.Len()
	}
	if offset < 0 {
		offset = 0
	}
	if end := buf.OffsetLineEnd(offset, false); offset > end {
		return end
	}
	return offset
}

// leadingIndent returns the whitespace the line containing offset starts with,
// cut at offset.
func leadingIndent(buf *buffer.Buffer, offset int) string {
	line := buf.LineOfOffset(offset)
	start := buf.OffsetOfLine(line)
	content := buf.LineContent(line)
	indent := content[:len(content)-len(strings.TrimLeft(content, " \t"))]
	if n := offset - start; n < len(indent) {
		indent = indent[:n]
	}
	return indent
}

// lineRange returns the offsets spanning whole lines first..last including
// the final line ending. When last is the final line, the line ending before
// first is taken instead so no empty line is left behind.
func lineRange(buf *buffer.Buffer, first, last int) (int, int) {
	start := buf.OffsetOfLine(first)
	end := buf.OffsetOfLine(last + 1)
	if last >= buf.LastLine() {
		end = buf.Len()
		if first > 0 {
			start = buf.OffsetOfLine(first) - len(buf.LineEnding().Sequence())
		}
	}
	return start, end
}

// linesText returns the content of lines first..last, each terminated by a
// newline.
func linesText(buf *buffer.Buffer, first, last int) string {
	var sb strings.Builder
	for line := first; line <= last; line++ {
		sb.WriteString(buf.LineContent(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

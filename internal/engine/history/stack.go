package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/engine/cursor"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is used when New is given a non-positive limit.
const DefaultMaxEntries = 1000

// Entry is one undo unit.
type Entry struct {
	Name      string
	Deltas    []buffer.Delta
	Before    *cursor.Selection // selection before the edit, may be nil
	Timestamp time.Time
}

// History manages the undo and redo stacks of one buffer.
type History struct {
	undoStack []Entry
	redoStack []Entry

	grouping bool
	group    Entry

	maxEntries int
}

// New creates a history that keeps at most maxEntries entries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Push records an entry and clears the redo stack. Entries without deltas
// are ignored.
func (h *History) Push(e Entry) {
	if len(e.Deltas) == 0 {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	if h.grouping {
		if len(h.group.Deltas) == 0 {
			h.group.Before = e.Before
			h.group.Timestamp = e.Timestamp
		}
		h.group.Deltas = append(h.group.Deltas, e.Deltas...)
		return
	}
	h.push(e)
}

func (h *History) push(e Entry) {
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent entry on buf. It returns the deltas it
// applied and the entry that was undone.
//
// If an edit fails partway, the part already applied is reverted and the
// entry stays on the undo stack. The returned deltas then cover both the
// partial apply and its rollback, so callers can keep derived state in step.
func (h *History) Undo(buf *buffer.Buffer) ([]buffer.DeltaInval, Entry, error) {
	if len(h.undoStack) == 0 {
		return nil, Entry{}, ErrNothingToUndo
	}
	entry := h.undoStack[len(h.undoStack)-1]

	inverse := make([]buffer.Delta, 0, len(entry.Deltas))
	for i := len(entry.Deltas) - 1; i >= 0; i-- {
		inverse = append(inverse, entry.Deltas[i].Inverse())
	}
	applied, err := apply(buf, inverse)
	if err != nil {
		return applied, entry, fmt.Errorf("undo %s: %w", entry.Name, err)
	}

	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, entry)
	return applied, entry, nil
}

// Redo reapplies the most recently undone entry on buf. Failures are
// handled as in Undo.
func (h *History) Redo(buf *buffer.Buffer) ([]buffer.DeltaInval, Entry, error) {
	if len(h.redoStack) == 0 {
		return nil, Entry{}, ErrNothingToRedo
	}
	entry := h.redoStack[len(h.redoStack)-1]

	applied, err := apply(buf, entry.Deltas)
	if err != nil {
		return applied, entry, fmt.Errorf("redo %s: %w", entry.Name, err)
	}

	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, entry)
	return applied, entry, nil
}

// apply runs deltas on buf in order. On failure it reverts what it applied.
func apply(buf *buffer.Buffer, deltas []buffer.Delta) ([]buffer.DeltaInval, error) {
	applied := make([]buffer.DeltaInval, 0, len(deltas))
	for _, d := range deltas {
		di, err := buf.Edit(d.Start, d.End, d.Text)
		if err != nil {
			return rollback(buf, applied), err
		}
		applied = append(applied, di)
	}
	return applied, nil
}

func rollback(buf *buffer.Buffer, applied []buffer.DeltaInval) []buffer.DeltaInval {
	out := applied
	for i := len(applied) - 1; i >= 0; i-- {
		inv := applied[i].Delta.Inverse()
		di, err := buf.Edit(inv.Start, inv.End, inv.Text)
		if err != nil {
			// Inverses of edits that just succeeded always fit.
			break
		}
		out = append(out, di)
	}
	return out
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo entries.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo entries.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// BeginGroup starts merging pushed entries into one named entry.
// Nested calls are ignored.
func (h *History) BeginGroup(name string) {
	if h.grouping {
		return
	}
	h.grouping = true
	h.group = Entry{Name: name}
}

// EndGroup pushes the merged group, if it recorded anything.
func (h *History) EndGroup() {
	if !h.grouping {
		return
	}
	h.grouping = false
	if len(h.group.Deltas) > 0 {
		h.push(h.group)
	}
	h.group = Entry{}
}

// IsGrouping returns true while a group is open.
func (h *History) IsGrouping() bool {
	return h.grouping
}

// Clear removes all undo and redo entries.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.group = Entry{}
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

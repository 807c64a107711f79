package document

import (
	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/engine/cursor"
	"github.com/dshills/doccore/internal/engine/editor"
)

// Edits never return errors: whatever the edit engine applied before
// failing is still propagated to derived state, and the failure is logged.

// DoInsert inserts s at every region of an insert-mode cursor.
func (d *Document) DoInsert(c *cursor.Cursor, s string) {
	deltas, err := d.editor.Insert(c, d.buf, s)
	d.finishEdit("insert", deltas, err)
}

// DoEdit runs an edit command.
func (d *Document) DoEdit(c *cursor.Cursor, cmd editor.Command) {
	deltas, err := d.editor.DoEdit(c, d.buf, cmd)
	d.finishEdit(cmd.String(), deltas, err)
}

// DoPaste pastes data after the cursor, or before it when before is set.
func (d *Document) DoPaste(c *cursor.Cursor, data editor.RegisterData, before bool) {
	deltas, err := d.editor.DoPaste(c, d.buf, data, before)
	d.finishEdit("paste", deltas, err)
}

// DoMotionMode arms an operator that waits for a motion. Requesting the
// operator that is already pending runs it over the cursor's line, as in
// "dd"; requesting a different one cancels the pending operator.
func (d *Document) DoMotionMode(c *cursor.Cursor, mm cursor.MotionMode) {
	if c.MotionMode == nil {
		c.MotionMode = cursor.Pending(mm)
		return
	}

	if *c.MotionMode == mm {
		offset := c.Offset()
		d.executeMotionMode(c, mm, offset, offset, true)
	}
	c.MotionMode = nil
}

func (d *Document) executeMotionMode(c *cursor.Cursor, mm cursor.MotionMode, start, end int, linewise bool) {
	deltas, err := d.editor.ExecuteMotionMode(c, d.buf, mm, start, end, linewise)
	d.finishEdit(mm.String(), deltas, err)
}

func (d *Document) finishEdit(name string, deltas []buffer.DeltaInval, err error) {
	d.applyDeltas(deltas)
	if err != nil {
		d.logger.Warn("%s: %v", name, err)
	}
}

// Package cursor provides the modal cursor of a document.
//
// A Cursor is in exactly one of three states:
//
//   - Normal: a block cursor resting on one offset
//   - Visual: an anchored selection from Start to End, charwise or linewise
//   - Insert: a multi-region Selection of carets or ranges
//
// Alongside the state it carries an optional horizontal hint (ColPosition)
// that keeps vertical motions in a stable visual column, and an optional
// pending motion-mode operator waiting for a motion to define its range.
//
// Selection Model:
//
// A Selection is an ordered list of SelRegion values. Order is insertion
// order, not position; the last region added is the one the cursor offset
// reports. Regions are kept as Start (the anchor) and End (where the caret
// is), so a backward region has End < Start.
//
// Basic usage:
//
//	c := cursor.New(cursor.Normal{Offset: 0})
//	c.MotionMode = cursor.Pending(cursor.MotionDelete)
//
//	sel := cursor.NewSelection()
//	sel.AddRegion(cursor.Caret(4))
//	sel.AddRegion(cursor.Caret(12))
//	c.State = cursor.Insert{Selection: sel}
//
// Cursor values are owned by the goroutine that owns the document and are
// not safe for concurrent use.
package cursor

// Package history provides undo/redo for a document's edits.
//
// Every edit command records an Entry: the deltas it applied, in order, and
// the cursor selection before it ran. Undo applies the inverse deltas in
// reverse order and hands back the selection so the caller can restore it;
// Redo applies the original deltas again.
//
//	h := history.New(1000) // keep at most 1000 entries
//	h.Push(history.Entry{Name: "insert", Deltas: deltas, Before: sel})
//
//	applied, entry, err := h.Undo(buf)
//
// # Grouping
//
// Entries pushed between BeginGroup and EndGroup are merged into one, so a
// burst of edits undoes as a unit:
//
//	h.BeginGroup("insert")
//	// ... several edits ...
//	h.EndGroup()
//
// A History belongs to the goroutine that owns the document.
package history

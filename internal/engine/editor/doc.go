// Package editor is the text edit engine of a document.
//
// An Editor turns edit commands into buffer edits for a modal cursor. Every
// operation mutates the buffer, updates the cursor, records an undo entry
// and returns the applied deltas in application order, so the caller can
// shift derived state (styles, fold levels) and invalidate caches:
//
//	ed := editor.New(editor.WithClipboard(clipboard.NewMemory()))
//	deltas, err := ed.Insert(cur, buf, "hello")
//
// # Registers
//
// Deletions and yanks fill the Register. Paste reads from it; the
// clipboard commands bypass it and talk to the Clipboard instead.
//
// # Multi-region edits
//
// In insert mode a command is applied to every region of the selection.
// Edits are applied from the highest offset down and overlapping edits are
// dropped, so each region's edit sees the text it was computed against.
package editor

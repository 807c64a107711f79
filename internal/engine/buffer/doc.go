// Package buffer provides the text buffer of a document: its content, a
// monotonic revision counter and the line/grapheme geometry the rest of the
// core navigates by.
//
// The buffer package provides:
//
//   - Byte offset <-> line/column conversion over a line start index
//   - Grapheme cluster stepping (via github.com/rivo/uniseg)
//   - Edits that return a Delta plus the invalidated line range
//   - A revision counter bumped on every mutation, mirrored into an
//     atomic.Uint64 for staleness checks from background goroutines
//   - Indentation unit detection
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//	di, _ := buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//	_ = di.Delta                           // Insert(7, "Beautiful ")
//
//	rev := buf.AtomicRev()
//	go func(want uint64) {
//	    if rev.Load() != want {
//	        return // buffer moved on
//	    }
//	}(buf.Rev())
//
// Thread Safety:
//
// A Buffer belongs to the goroutine that owns the document. Text returns an
// immutable string, so handing it to another goroutine is a snapshot; the
// revision mirror is the only shared mutable state.
package buffer

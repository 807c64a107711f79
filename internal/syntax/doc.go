// Package syntax parses documents with tree-sitter and derives what the
// document core needs from the tree:
//
//   - style spans for highlighting (style.Spans)
//   - a bracket matcher that only sees real bracket tokens, so brackets
//     inside strings and comments are ignored
//   - a Lens holding the bracket nesting level of every line
//
// A Syntax value is immutable once returned. Parse produces a new value and
// may run on any goroutine; Shift produces a copy whose offsets follow an
// edit so the owner can keep using it until the next parse lands.
//
// Parsing is incremental when the previous tree is exactly one revision
// behind and the edit that produced the new revision is known; otherwise
// the whole text is parsed again.
package syntax

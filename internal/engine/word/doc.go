// Package word provides textual scanners used by cursor motions.
//
// A Scanner walks a text snapshot from a byte offset and answers three kinds
// of questions:
//
//   - Word boundaries (NextBoundary, PrevBoundary, EndBoundary). Text is
//     split into grapheme clusters, each cluster is classified by its first
//     rune, and neighbours of the same class are merged into runs, so
//     "foo.bar" is word, punctuation, word and a combining accent stays
//     with its letter.
//   - Unmatched brackets (NextUnmatched, PreviousUnmatched), found by
//     counting nesting depth.
//   - Bracket pairs (MatchPairs).
//
// The bracket scanners are purely textual. They do not know about strings or
// comments; callers that have a syntax tree should prefer it.
package word

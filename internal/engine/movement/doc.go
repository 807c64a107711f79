// Package movement names the abstract cursor motions a document resolves
// into buffer offsets: character, word, line, document and bracket moves.
//
// A Movement is a small value. Most kinds carry no data; Line carries a
// LinePosition, Offset a target offset, and the unmatched-bracket kinds the
// bracket character to look for.
//
// Parse turns the textual form used by scripts ("down", "line:12",
// "next-unmatched:)") into a Movement.
package movement

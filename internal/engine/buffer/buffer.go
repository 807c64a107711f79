package buffer

import (
	"errors"
	"sort"
	"strings"
	"sync/atomic"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	if le == LineEndingCRLF {
		return "\\r\\n"
	}
	return "\\n"
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// Buffer holds the text of one document together with its revision.
//
// Loaded text is stored with the buffer's own line ending, so a CRLF file
// read into an LF buffer is converted on load. The ending found in the
// loaded text is kept and reported by SourceLineEnding.
//
// A Buffer is owned by a single goroutine. The only value that may be
// read from other goroutines is the revision mirror returned by AtomicRev,
// which is updated after every mutation completes.
type Buffer struct {
	text       string
	lineStarts []int // byte offset of the first byte of each line

	rev       uint64
	atomicRev *atomic.Uint64

	lineEnding   LineEnding
	sourceEnding LineEnding
	tabWidth     int
	indentUnit   string
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lineStarts: []int{0},
		atomicRev:  new(atomic.Uint64),
		lineEnding: LineEndingLF,
		tabWidth:   4,
		indentUnit: "    ",
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// The initial content does not count as a mutation; the revision stays 0.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.sourceEnding = DetectLineEnding(s)
	b.text = b.normalizeLineEndings(s)
	b.lineStarts = computeLineStarts(b.text)
	return b
}

// normalizeLineEndings converts all line endings to the buffer's preferred style.
func (b *Buffer) normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if b.lineEnding == LineEndingCRLF {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	return s
}

func computeLineStarts(s string) []int {
	starts := make([]int, 1, strings.Count(s, "\n")+1)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// Read Operations

// Text returns the full buffer content.
// Go strings are immutable, so the result is a snapshot that stays valid
// after further edits and may be handed to other goroutines.
func (b *Buffer) Text() string {
	return b.text
}

// Slice returns the text in the byte range [start, end), clamped to the buffer.
func (b *Buffer) Slice(start, end int) string {
	start = b.clamp(start)
	end = b.clamp(end)
	if start >= end {
		return ""
	}
	return b.text[start:end]
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// Rev returns the current revision.
func (b *Buffer) Rev() uint64 {
	return b.rev
}

// AtomicRev returns the concurrency-safe mirror of the revision.
// Background workers hold on to this pointer to detect that the buffer
// has moved on since they were dispatched.
func (b *Buffer) AtomicRev() *atomic.Uint64 {
	return b.atomicRev
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// SourceLineEnding returns the line ending most common in the last loaded
// text, before it was converted to the buffer's style.
func (b *Buffer) SourceLineEnding() LineEnding {
	return b.sourceEnding
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

func (b *Buffer) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(b.text) {
		return len(b.text)
	}
	return offset
}

// Line Operations

// LineCount returns the number of lines (newlines + 1).
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// LastLine returns the index of the last line.
func (b *Buffer) LastLine() int {
	return len(b.lineStarts) - 1
}

// LineOfOffset returns the line containing offset.
// Offsets past the end map to the last line.
func (b *Buffer) LineOfOffset(offset int) int {
	offset = b.clamp(offset)
	return sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	}) - 1
}

// OffsetOfLine returns the byte offset of the start of a line.
// Lines past the last line map to the end of the buffer.
func (b *Buffer) OffsetOfLine(line int) int {
	if line <= 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return len(b.text)
	}
	return b.lineStarts[line]
}

// lineContentEnd returns the offset of the end of the line, before its line ending.
func (b *Buffer) lineContentEnd(line int) int {
	if line < 0 {
		line = 0
	}
	if line >= b.LastLine() {
		return len(b.text)
	}
	end := b.lineStarts[line+1] - 1
	if end > 0 && b.text[end-1] == '\r' && end-1 >= b.lineStarts[line] {
		end--
	}
	return end
}

// LineContent returns the text of a line without its line ending.
func (b *Buffer) LineContent(line int) string {
	if line < 0 || line > b.LastLine() {
		return ""
	}
	return b.text[b.lineStarts[line]:b.lineContentEnd(line)]
}

// LineLen returns the length of a line in bytes, without its line ending.
func (b *Buffer) LineLen(line int) int {
	return len(b.LineContent(line))
}

// OffsetToLineCol converts a byte offset to a line and byte column.
func (b *Buffer) OffsetToLineCol(offset int) (int, int) {
	offset = b.clamp(offset)
	line := b.LineOfOffset(offset)
	return line, offset - b.lineStarts[line]
}

// OffsetOfLineCol converts a line and byte column to an offset.
// The line is clamped to the buffer and the column to the line's content.
func (b *Buffer) OffsetOfLineCol(line, col int) int {
	if line < 0 {
		line = 0
	}
	if line > b.LastLine() {
		line = b.LastLine()
	}
	start := b.lineStarts[line]
	maxCol := b.lineContentEnd(line) - start
	if col > maxCol {
		col = maxCol
	}
	if col < 0 {
		col = 0
	}
	return start + col
}

// LineEndCol returns the column of the end of a line.
// With caret set the column is one past the last character (where an
// insertion caret may rest); otherwise it is the start of the last grapheme,
// so a block cursor sits on the last character.
func (b *Buffer) LineEndCol(line int, caret bool) int {
	content := b.LineContent(line)
	if caret || content == "" {
		return len(content)
	}
	return lastGraphemeStart(content)
}

// OffsetLineEnd returns the offset of the end of the line containing offset.
// See LineEndCol for the meaning of caret.
func (b *Buffer) OffsetLineEnd(offset int, caret bool) int {
	line := b.LineOfOffset(offset)
	return b.OffsetOfLine(line) + b.LineEndCol(line, caret)
}

// FirstNonBlankCol returns the column of the first character on the line
// that is neither a space nor a tab. An all-blank line yields its length.
func (b *Buffer) FirstNonBlankCol(line int) int {
	content := b.LineContent(line)
	return len(content) - len(strings.TrimLeft(content, " \t"))
}

// FirstNonBlankCharacterOnLine returns the offset of the first non-blank
// character on the line.
func (b *Buffer) FirstNonBlankCharacterOnLine(line int) int {
	return b.OffsetOfLine(line) + b.FirstNonBlankCol(line)
}

// Write Operations

// LoadContent replaces the whole buffer.
func (b *Buffer) LoadContent(s string) {
	b.sourceEnding = DetectLineEnding(s)
	b.text = b.normalizeLineEndings(s)
	b.lineStarts = computeLineStarts(b.text)
	b.bumpRev()
}

// Edit replaces the byte range [start, end) with text and returns the
// applied delta together with the lines it invalidated.
func (b *Buffer) Edit(start, end int, text string) (DeltaInval, error) {
	if start < 0 || start > end || end > len(b.text) {
		return DeltaInval{}, ErrRangeInvalid
	}

	text = b.normalizeLineEndings(text)
	startLine, startCol := b.OffsetToLineCol(start)
	endLine, endCol := b.OffsetToLineCol(end)

	d := Delta{
		Start:       start,
		End:         end,
		Text:        text,
		OldText:     b.text[start:end],
		StartPoint:  Point{Line: startLine, Column: startCol},
		OldEndPoint: Point{Line: endLine, Column: endCol},
	}
	d.NewEndPoint = d.StartPoint.Advance(text)

	b.text = b.text[:start] + text + b.text[end:]
	b.lineStarts = computeLineStarts(b.text)
	b.bumpRev()

	return DeltaInval{
		Delta: d,
		Inval: InvalLines{
			StartLine:      startLine,
			InvalLineCount: endLine - startLine + 1,
			NewLineCount:   d.NewEndPoint.Line - startLine + 1,
		},
	}, nil
}

// Insert inserts text at offset.
func (b *Buffer) Insert(offset int, text string) (DeltaInval, error) {
	if offset < 0 || offset > len(b.text) {
		return DeltaInval{}, ErrOffsetOutOfRange
	}
	return b.Edit(offset, offset, text)
}

// bumpRev advances the revision and publishes it to the mirror.
func (b *Buffer) bumpRev() {
	b.rev++
	b.atomicRev.Store(b.rev)
}

// SetTabWidth sets the buffer's tab width.
func (b *Buffer) SetTabWidth(width int) {
	if width > 0 {
		b.tabWidth = width
	}
}

package buffer

import "github.com/rivo/uniseg"

// Grapheme clusters never span a line boundary except for "\r\n", which
// lives inside one line's byte range, so boundary searches only need to
// segment the line that contains the offset.

// lastGraphemeStart returns the byte index where the last grapheme cluster of s starts.
func lastGraphemeStart(s string) int {
	start, pos := 0, 0
	state := -1
	rest := s
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.StepString(rest, state)
		start = pos
		pos += len(cluster)
	}
	return start
}

// PrevGraphemeBoundary returns the closest grapheme boundary strictly
// before offset. It returns false when offset is at the start of the buffer.
func (b *Buffer) PrevGraphemeBoundary(offset int) (int, bool) {
	offset = b.clamp(offset)
	if offset == 0 {
		return 0, false
	}
	lineStart := b.OffsetOfLine(b.LineOfOffset(offset - 1))
	prev, pos := lineStart, lineStart
	state := -1
	rest := b.text[lineStart:]
	var cluster string
	for len(rest) > 0 && pos < offset {
		prev = pos
		cluster, rest, _, state = uniseg.StepString(rest, state)
		pos += len(cluster)
	}
	return prev, true
}

// NextGraphemeBoundary returns the closest grapheme boundary strictly
// after offset. It returns false when offset is at the end of the buffer.
func (b *Buffer) NextGraphemeBoundary(offset int) (int, bool) {
	offset = b.clamp(offset)
	if offset >= len(b.text) {
		return len(b.text), false
	}
	pos := b.OffsetOfLine(b.LineOfOffset(offset))
	state := -1
	rest := b.text[pos:]
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.StepString(rest, state)
		pos += len(cluster)
		if pos > offset {
			return pos, true
		}
	}
	return len(b.text), true
}

// PrevGraphemeOffset steps back count grapheme clusters from offset,
// never going below limit.
func (b *Buffer) PrevGraphemeOffset(offset, count, limit int) int {
	newOffset := offset
	for i := 0; i < count; i++ {
		prev, ok := b.PrevGraphemeBoundary(newOffset)
		if !ok || prev < limit {
			return newOffset
		}
		newOffset = prev
	}
	return newOffset
}

// NextGraphemeOffset steps forward count grapheme clusters from offset,
// never going above limit.
func (b *Buffer) NextGraphemeOffset(offset, count, limit int) int {
	newOffset := offset
	for i := 0; i < count; i++ {
		next, ok := b.NextGraphemeBoundary(newOffset)
		if !ok || next > limit {
			return newOffset
		}
		newOffset = next
	}
	return newOffset
}

package syntax

import (
	"github.com/dshills/doccore/internal/engine/buffer"
)

// Lens holds the bracket nesting level at the start of every line. Folding
// and line height decisions are made from it. A Lens is immutable.
type Lens struct {
	levels []int
}

func newLens(text string, m *matcher) *Lens {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	levels := make([]int, len(starts))
	depth, bi := 0, 0
	for line, start := range starts {
		for bi < len(m.brackets) && m.brackets[bi].offset < start {
			b := m.brackets[bi]
			if _, paired := m.pairs[b.offset]; paired {
				if isOpen(b.ch) {
					depth++
				} else {
					depth--
				}
			}
			bi++
		}
		levels[line] = depth
	}
	return &Lens{levels: levels}
}

// Len returns the number of lines the lens covers.
func (l *Lens) Len() int {
	if l == nil {
		return 0
	}
	return len(l.levels)
}

// Level returns the nesting level at the start of line, or 0 for lines the
// lens does not cover.
func (l *Lens) Level(line int) int {
	if l == nil || line < 0 || line >= len(l.levels) {
		return 0
	}
	return l.levels[line]
}

// ApplyDelta returns the lens with the lines replaced by an edit spliced
// out and the lines it inserted given the level of the edited line.
func (l *Lens) ApplyDelta(d buffer.Delta) *Lens {
	if l == nil || len(l.levels) == 0 {
		return &Lens{}
	}

	start := d.StartPoint.Line
	if start >= len(l.levels) {
		start = len(l.levels) - 1
	}
	removed := d.OldEndPoint.Line - d.StartPoint.Line
	added := d.NewEndPoint.Line - d.StartPoint.Line

	tail := start + 1 + removed
	if tail > len(l.levels) {
		tail = len(l.levels)
	}

	levels := make([]int, 0, len(l.levels)-removed+added)
	levels = append(levels, l.levels[:start+1]...)
	for i := 0; i < added; i++ {
		levels = append(levels, l.levels[start])
	}
	levels = append(levels, l.levels[tail:]...)
	return &Lens{levels: levels}
}

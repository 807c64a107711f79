package syntax

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dshills/doccore/internal/engine/buffer"
)

// bracket is a bracket token found in the parse tree.
type bracket struct {
	offset int
	ch     rune
}

// matcher pairs bracket tokens. Offsets are ascending.
type matcher struct {
	brackets []bracket
	pairs    map[int]int
}

func counterpart(c rune) (rune, bool) {
	switch c {
	case '(':
		return ')', true
	case ')':
		return '(', true
	case '[':
		return ']', true
	case ']':
		return '[', true
	case '{':
		return '}', true
	case '}':
		return '{', true
	}
	return 0, false
}

func isOpen(c rune) bool {
	return c == '(' || c == '[' || c == '{'
}

// collectBrackets returns the bracket leaves under root in document order.
// String and comment contents are single tokens, so brackets inside them
// never show up as leaves.
func collectBrackets(root *sitter.Node) []bracket {
	var out []bracket
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		count := int(n.ChildCount())
		if count == 0 {
			typ := n.Type()
			if len(typ) == 1 && n.EndByte() == n.StartByte()+1 {
				if _, ok := counterpart(rune(typ[0])); ok {
					out = append(out, bracket{offset: int(n.StartByte()), ch: rune(typ[0])})
				}
			}
			return
		}
		for i := 0; i < count; i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return out
}

func newMatcher(brackets []bracket) *matcher {
	m := &matcher{brackets: brackets, pairs: make(map[int]int)}
	var stack []bracket
	for _, b := range brackets {
		if isOpen(b.ch) {
			stack = append(stack, b)
			continue
		}
		want, _ := counterpart(b.ch)
		if len(stack) == 0 || stack[len(stack)-1].ch != want {
			continue
		}
		open := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		m.pairs[open.offset] = b.offset
		m.pairs[b.offset] = open.offset
	}
	return m
}

func (m *matcher) pair(offset int) (int, bool) {
	if m == nil {
		return 0, false
	}
	other, ok := m.pairs[offset]
	return other, ok
}

func (m *matcher) findTag(offset int, previous bool, tag rune) (int, bool) {
	if m == nil {
		return 0, false
	}
	other, ok := counterpart(tag)
	if !ok {
		return 0, false
	}

	depth := 0
	visit := func(b bracket) bool {
		if b.ch == tag && depth == 0 {
			return true
		}
		if b.ch == other {
			depth++
		} else if b.ch == tag {
			depth--
		}
		return false
	}

	// First bracket after offset.
	i := sort.Search(len(m.brackets), func(i int) bool {
		return m.brackets[i].offset > offset
	})
	if previous {
		// Last bracket before offset.
		j := sort.Search(len(m.brackets), func(i int) bool {
			return m.brackets[i].offset >= offset
		})
		for k := j - 1; k >= 0; k-- {
			if visit(m.brackets[k]) {
				return m.brackets[k].offset, true
			}
		}
		return 0, false
	}
	for k := i; k < len(m.brackets); k++ {
		if visit(m.brackets[k]) {
			return m.brackets[k].offset, true
		}
	}
	return 0, false
}

// shift maps bracket offsets through an applied edit. Brackets inside the
// replaced range are dropped.
func (m *matcher) shift(d buffer.Delta) *matcher {
	if m == nil {
		return &matcher{}
	}
	out := make([]bracket, 0, len(m.brackets))
	for _, b := range m.brackets {
		if b.offset >= d.Start && b.offset < d.End {
			continue
		}
		out = append(out, bracket{offset: d.Transform(b.offset, true), ch: b.ch})
	}
	return newMatcher(out)
}

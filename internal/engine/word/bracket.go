package word

import "unicode/utf8"

// MatchingChar returns the bracket that pairs with c.
func MatchingChar(c rune) (rune, bool) {
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

// IsOpening reports whether c opens a bracket pair.
func IsOpening(c rune) bool {
	return c == '(' || c == '[' || c == '{'
}

// NextUnmatched scans forward from the scanner position, including the
// character at it, for an occurrence of c that is not balanced by its
// counterpart. It returns the offset just past that occurrence.
func (s *Scanner) NextUnmatched(c rune) (int, bool) {
	other, ok := MatchingChar(c)
	if !ok {
		return 0, false
	}

	depth := 0
	for i := s.pos; i < len(s.text); {
		r, size := utf8.DecodeRuneInString(s.text[i:])
		i += size
		if r == c && depth == 0 {
			return i, true
		}
		if r == other {
			depth++
		} else if r == c {
			depth--
		}
	}
	return 0, false
}

// PreviousUnmatched scans backward from the scanner position for an
// occurrence of c that is not balanced by its counterpart. It returns the
// offset of that occurrence.
func (s *Scanner) PreviousUnmatched(c rune) (int, bool) {
	other, ok := MatchingChar(c)
	if !ok {
		return 0, false
	}

	depth := 0
	for i := s.pos; i > 0; {
		r, size := utf8.DecodeLastRuneInString(s.text[:i])
		i -= size
		if r == c && depth == 0 {
			return i, true
		}
		if r == other {
			depth++
		} else if r == c {
			depth--
		}
	}
	return 0, false
}

// MatchPairs returns the offset of the bracket paired with the one at the
// scanner position.
func (s *Scanner) MatchPairs() (int, bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(s.text[s.pos:])
	other, ok := MatchingChar(c)
	if !ok {
		return 0, false
	}

	if IsOpening(other) {
		return s.PreviousUnmatched(other)
	}

	after := &Scanner{text: s.text, pos: s.pos + size}
	end, ok := after.NextUnmatched(other)
	if !ok {
		return 0, false
	}
	return end - utf8.RuneLen(other), true
}

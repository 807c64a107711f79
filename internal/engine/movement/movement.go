package movement

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrUnknownMovement is returned by Parse for names it does not know.
var ErrUnknownMovement = errors.New("unknown movement")

// Kind identifies a movement.
type Kind uint8

const (
	Left Kind = iota
	Right
	Up
	Down
	DocumentStart
	DocumentEnd
	FirstNonBlank
	StartOfLine
	EndOfLine
	Line
	Offset
	WordForward
	WordEndForward
	WordBackward
	NextUnmatched
	PreviousUnmatched
	MatchPairs
)

var kindNames = map[Kind]string{
	Left:              "left",
	Right:             "right",
	Up:                "up",
	Down:              "down",
	DocumentStart:     "document-start",
	DocumentEnd:       "document-end",
	FirstNonBlank:     "first-non-blank",
	StartOfLine:       "start-of-line",
	EndOfLine:         "end-of-line",
	Line:              "line",
	Offset:            "offset",
	WordForward:       "word-forward",
	WordEndForward:    "word-end-forward",
	WordBackward:      "word-backward",
	NextUnmatched:     "next-unmatched",
	PreviousUnmatched: "previous-unmatched",
	MatchPairs:        "match-pairs",
}

// String returns the script name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// LineKind selects the target of a Line movement.
type LineKind uint8

const (
	LineNumber LineKind = iota // a 1-based line number
	LineFirst
	LineLast
)

// LinePosition is the target of a Line movement.
type LinePosition struct {
	Kind LineKind
	N    int // 1-based, only for LineNumber
}

// Movement is an abstract cursor motion.
type Movement struct {
	Kind Kind
	Line LinePosition // Line
	N    int          // Offset
	Char rune         // NextUnmatched, PreviousUnmatched
}

// Of returns a movement of a kind that carries no data.
func Of(k Kind) Movement {
	return Movement{Kind: k}
}

// ToLine returns a movement to the 1-based line n.
func ToLine(n int) Movement {
	return Movement{Kind: Line, Line: LinePosition{Kind: LineNumber, N: n}}
}

// ToFirstLine returns a movement to the first line.
func ToFirstLine() Movement {
	return Movement{Kind: Line, Line: LinePosition{Kind: LineFirst}}
}

// ToLastLine returns a movement to the last line.
func ToLastLine() Movement {
	return Movement{Kind: Line, Line: LinePosition{Kind: LineLast}}
}

// ToOffset returns a movement to offset n.
func ToOffset(n int) Movement {
	return Movement{Kind: Offset, N: n}
}

// ToNextUnmatched returns a movement to the next unmatched c.
func ToNextUnmatched(c rune) Movement {
	return Movement{Kind: NextUnmatched, Char: c}
}

// ToPreviousUnmatched returns a movement to the previous unmatched c.
func ToPreviousUnmatched(c rune) Movement {
	return Movement{Kind: PreviousUnmatched, Char: c}
}

// IsVertical reports whether the movement changes lines while keeping a
// horizontal target. Operators applied over vertical movements are linewise.
func (m Movement) IsVertical() bool {
	switch m.Kind {
	case Up, Down, Line:
		return true
	}
	return false
}

// String returns the script form of the movement.
func (m Movement) String() string {
	switch m.Kind {
	case Line:
		switch m.Line.Kind {
		case LineFirst:
			return "line:first"
		case LineLast:
			return "line:last"
		}
		return "line:" + strconv.Itoa(m.Line.N)
	case Offset:
		return "offset:" + strconv.Itoa(m.N)
	case NextUnmatched, PreviousUnmatched:
		return m.Kind.String() + ":" + string(m.Char)
	}
	return m.Kind.String()
}

// Parse parses the script form of a movement, the inverse of String.
func Parse(s string) (Movement, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")

	for k, kn := range kindNames {
		if kn != name {
			continue
		}
		switch k {
		case Line:
			switch arg {
			case "first":
				return ToFirstLine(), nil
			case "last":
				return ToLastLine(), nil
			}
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				return Movement{}, fmt.Errorf("%w: bad line %q", ErrUnknownMovement, arg)
			}
			return ToLine(n), nil
		case Offset:
			n, err := strconv.Atoi(arg)
			if err != nil || n < 0 {
				return Movement{}, fmt.Errorf("%w: bad offset %q", ErrUnknownMovement, arg)
			}
			return ToOffset(n), nil
		case NextUnmatched, PreviousUnmatched:
			if utf8.RuneCountInString(arg) != 1 {
				return Movement{}, fmt.Errorf("%w: %s needs one character", ErrUnknownMovement, name)
			}
			c, _ := utf8.DecodeRuneInString(arg)
			return Movement{Kind: k, Char: c}, nil
		}
		if hasArg {
			return Movement{}, fmt.Errorf("%w: %s takes no argument", ErrUnknownMovement, name)
		}
		return Of(k), nil
	}
	return Movement{}, fmt.Errorf("%w: %q", ErrUnknownMovement, s)
}

package movement

import (
	"errors"
	"testing"
)

func TestIsVertical(t *testing.T) {
	vertical := []Movement{Of(Up), Of(Down), ToLine(3), ToLastLine()}
	for _, m := range vertical {
		if !m.IsVertical() {
			t.Errorf("%s should be vertical", m)
		}
	}

	other := []Movement{Of(Left), Of(EndOfLine), Of(DocumentEnd), Of(WordForward), ToOffset(2), Of(MatchPairs)}
	for _, m := range other {
		if m.IsVertical() {
			t.Errorf("%s should not be vertical", m)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Movement
	}{
		{"left", Of(Left)},
		{" word-end-forward ", Of(WordEndForward)},
		{"line:12", ToLine(12)},
		{"line:first", ToFirstLine()},
		{"line:last", ToLastLine()},
		{"offset:0", ToOffset(0)},
		{"next-unmatched:)", ToNextUnmatched(')')},
		{"previous-unmatched:{", ToPreviousUnmatched('{')},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v; want %+v", tt.in, got, tt.want)
		}
		if again, err := Parse(got.String()); err != nil || again != got {
			t.Errorf("Parse(%q) did not round trip through %q", tt.in, got.String())
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"sideways", "line:0", "line:x", "offset:-1", "next-unmatched:", "next-unmatched:ab", "left:2"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnknownMovement) {
			t.Errorf("Parse(%q): expected ErrUnknownMovement, got %v", in, err)
		}
	}
}

package document

import (
	"context"
	"testing"

	"github.com/dshills/doccore/internal/engine/cursor"
	"github.com/dshills/doccore/internal/engine/movement"
	"github.com/dshills/doccore/internal/syntax"
)

func newDoc(t *testing.T, text string, opts ...Option) *Document {
	t.Helper()
	d := New(Unsaved(), nil, opts...)
	d.LoadContent(text)
	return d
}

func parsedSyntax(t *testing.T, path, text string) *syntax.Syntax {
	t.Helper()
	s, err := syntax.ForPath(path)
	if err != nil {
		t.Fatalf("ForPath(%q) failed: %v", path, err)
	}
	parsed, err := s.Parse(context.Background(), 1, text, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return parsed
}

func TestLeftRightRoundTrip(t *testing.T) {
	d := newDoc(t, "hello world\nsecond line")
	buf := d.Buffer()

	for _, mode := range []cursor.Mode{cursor.ModeNormal, cursor.ModeInsert} {
		for o := 0; o <= 10; o++ {
			for c := 1; c <= o; c++ {
				left, _ := d.MoveOffset(o, nil, c, movement.Of(movement.Left), mode)
				back, _ := d.MoveOffset(left, nil, c, movement.Of(movement.Right), mode)

				wantLine, wantCol := buf.OffsetToLineCol(o)
				line, col := buf.OffsetToLineCol(back)
				if line != wantLine || col != wantCol {
					t.Errorf("%s: Left(%d) then Right(%d) from %d = %d:%d; want %d:%d",
						mode, c, c, o, line, col, wantLine, wantCol)
				}
			}
		}
	}
}

func TestLeftRightClamp(t *testing.T) {
	d := newDoc(t, "ab\ncd")

	tests := []struct {
		name   string
		offset int
		kind   movement.Kind
		count  int
		mode   cursor.Mode
		want   int
	}{
		{"normal left stops at line start", 3, movement.Left, 5, cursor.ModeNormal, 3},
		{"insert left crosses lines", 3, movement.Left, 1, cursor.ModeInsert, 2},
		{"normal right stops on last char", 0, movement.Right, 5, cursor.ModeNormal, 1},
		{"visual right stops on last char", 0, movement.Right, 5, cursor.ModeVisual, 1},
		{"insert right passes line end", 1, movement.Right, 1, cursor.ModeInsert, 2},
		{"insert right clamps to buffer", 3, movement.Right, 9, cursor.ModeInsert, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, horiz := d.MoveOffset(tt.offset, nil, tt.count, movement.Of(tt.kind), tt.mode)
			if got != tt.want {
				t.Errorf("got %d; want %d", got, tt.want)
			}
			if horiz != nil {
				t.Errorf("horizontal moves should not set a hint, got %v", horiz)
			}
		})
	}
}

func TestVerticalHintPersists(t *testing.T) {
	d := newDoc(t, "abcdef\nab\nabcdef")
	c := cursor.New(cursor.Normal{Offset: 4})

	d.MoveCursor(c, movement.Of(movement.Down), 1, false)
	if c.Offset() != 8 {
		t.Fatalf("Down onto short line = %d; want 8", c.Offset())
	}
	if c.Horiz == nil || c.Horiz.Kind != cursor.ColX || c.Horiz.X != 4 {
		t.Fatalf("expected Col(4) hint, got %v", c.Horiz)
	}

	d.MoveCursor(c, movement.Of(movement.Down), 1, false)
	if c.Offset() != 14 {
		t.Errorf("second Down should restore column 4, got %d", c.Offset())
	}

	d.MoveCursor(c, movement.Of(movement.Up), 2, false)
	if c.Offset() != 4 {
		t.Errorf("Up 2 = %d; want 4", c.Offset())
	}

	d.MoveCursor(c, movement.Of(movement.Left), 1, false)
	if c.Horiz != nil {
		t.Errorf("non-vertical motion should reset the hint, got %v", c.Horiz)
	}

	d.MoveCursor(c, movement.Of(movement.Down), 1, false)
	if c.Offset() != 8 {
		t.Errorf("Down after reset = %d; want 8", c.Offset())
	}
	d.MoveCursor(c, movement.Of(movement.Down), 1, false)
	if c.Offset() != 13 {
		t.Errorf("hint should come from column 3 now, got %d", c.Offset())
	}
}

func TestVerticalClamp(t *testing.T) {
	d := newDoc(t, "abc\ndef\nghi")

	if got, _ := d.MoveOffset(1, nil, 1, movement.Of(movement.Up), cursor.ModeNormal); got != 1 {
		t.Errorf("Up on first line = %d; want 1", got)
	}
	if got, _ := d.MoveOffset(1, nil, 10, movement.Of(movement.Down), cursor.ModeNormal); got != 9 {
		t.Errorf("Down past last line = %d; want 9", got)
	}
	if got, _ := d.MoveOffset(9, cursor.AtEnd(), 1, movement.Of(movement.Up), cursor.ModeNormal); got != 6 {
		t.Errorf("Up with End hint in normal mode = %d; want 6", got)
	}
	if got, _ := d.MoveOffset(9, cursor.AtEnd(), 1, movement.Of(movement.Up), cursor.ModeInsert); got != 7 {
		t.Errorf("Up with End hint in insert mode = %d; want 7", got)
	}
}

func TestLineMovement(t *testing.T) {
	d := newDoc(t, "a\nbb\nccc")

	tests := []struct {
		name string
		m    movement.Movement
		want int
	}{
		{"line 2", movement.ToLine(2), 2},
		{"line 3", movement.ToLine(3), 5},
		{"line 0 clamps to first", movement.ToLine(0), 0},
		{"line past end clamps to last", movement.ToLine(99), 5},
		{"first", movement.ToFirstLine(), 0},
		{"last", movement.ToLastLine(), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, horiz := d.MoveOffset(0, nil, 1, tt.m, cursor.ModeNormal)
			if got != tt.want {
				t.Errorf("got %d; want %d", got, tt.want)
			}
			if horiz == nil {
				t.Error("line movements should return a hint")
			}
		})
	}
}

func TestDocumentStartEnd(t *testing.T) {
	d := newDoc(t, "hello\nworld")

	for _, offset := range []int{0, 3, 6, 8, 11} {
		got, horiz := d.MoveOffset(offset, nil, 1, movement.Of(movement.DocumentStart), cursor.ModeNormal)
		if got != 0 || horiz == nil || horiz.Kind != cursor.ColStart {
			t.Errorf("DocumentStart from %d = %d,%v; want 0,Start", offset, got, horiz)
		}

		got, horiz = d.MoveOffset(offset, nil, 1, movement.Of(movement.DocumentEnd), cursor.ModeNormal)
		if got != 10 || horiz == nil || horiz.Kind != cursor.ColEnd {
			t.Errorf("DocumentEnd from %d = %d,%v; want 10,End", offset, got, horiz)
		}

		got, _ = d.MoveOffset(offset, nil, 1, movement.Of(movement.DocumentEnd), cursor.ModeInsert)
		if got != 11 {
			t.Errorf("DocumentEnd in insert mode from %d = %d; want 11", offset, got)
		}
	}
}

func TestLinePositions(t *testing.T) {
	d := newDoc(t, "x\n  hello\n")

	tests := []struct {
		name     string
		kind     movement.Kind
		mode     cursor.Mode
		want     int
		wantHint cursor.ColKind
	}{
		{"first non-blank", movement.FirstNonBlank, cursor.ModeNormal, 4, cursor.ColFirstNonBlank},
		{"start of line", movement.StartOfLine, cursor.ModeNormal, 2, cursor.ColStart},
		{"end of line", movement.EndOfLine, cursor.ModeNormal, 8, cursor.ColEnd},
		{"end of line insert", movement.EndOfLine, cursor.ModeInsert, 9, cursor.ColEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, horiz := d.MoveOffset(6, nil, 1, movement.Of(tt.kind), tt.mode)
			if got != tt.want {
				t.Errorf("got %d; want %d", got, tt.want)
			}
			if horiz == nil || horiz.Kind != tt.wantHint {
				t.Errorf("hint = %v; want kind %d", horiz, tt.wantHint)
			}
		})
	}

	if got := d.LineHorizCol(1, *cursor.AtFirstNonBlank(), false); got != 2 {
		t.Errorf("LineHorizCol(FirstNonBlank) = %d; want 2", got)
	}
}

func TestOffsetMovement(t *testing.T) {
	d := newDoc(t, "hello")

	if got, _ := d.MoveOffset(0, nil, 1, movement.ToOffset(2), cursor.ModeNormal); got != 2 {
		t.Errorf("Offset(2) = %d; want 2", got)
	}
	if got, _ := d.MoveOffset(0, nil, 1, movement.ToOffset(99), cursor.ModeNormal); got != 4 {
		t.Errorf("Offset(99) = %d; want 4", got)
	}
	for _, mode := range []cursor.Mode{cursor.ModeNormal, cursor.ModeVisual, cursor.ModeInsert} {
		if got, _ := d.MoveOffset(3, nil, 1, movement.ToOffset(-5), mode); got != 0 {
			t.Errorf("Offset(-5) in %s = %d; want 0", mode, got)
		}
	}
}

func TestWordMovements(t *testing.T) {
	d := newDoc(t, "hello world")

	if got, _ := d.MoveOffset(0, nil, 1, movement.Of(movement.WordEndForward), cursor.ModeNormal); got != 4 {
		t.Errorf("WordEndForward in normal mode = %d; want 4", got)
	}
	if got, _ := d.MoveOffset(0, nil, 1, movement.Of(movement.WordEndForward), cursor.ModeInsert); got != 5 {
		t.Errorf("WordEndForward in insert mode = %d; want 5", got)
	}
	if got, _ := d.MoveOffset(0, nil, 1, movement.Of(movement.WordForward), cursor.ModeNormal); got != 6 {
		t.Errorf("WordForward = %d; want 6", got)
	}
	if got, _ := d.MoveOffset(8, nil, 1, movement.Of(movement.WordBackward), cursor.ModeNormal); got != 6 {
		t.Errorf("WordBackward = %d; want 6", got)
	}
	if got, _ := d.MoveOffset(0, nil, 1, movement.Of(movement.WordBackward), cursor.ModeNormal); got != 0 {
		t.Errorf("WordBackward at start should not move, got %d", got)
	}
	if got, _ := d.MoveOffset(11, nil, 1, movement.Of(movement.WordEndForward), cursor.ModeInsert); got != 11 {
		t.Errorf("WordEndForward at end should not move, got %d", got)
	}
}

func TestMatchPairs(t *testing.T) {
	const text = "foo(bar)"

	docs := map[string]*Document{
		"heuristic": newDoc(t, text),
		"matcher":   newDoc(t, text, WithSyntax(parsedSyntax(t, "x.js", text))),
	}

	for name, d := range docs {
		t.Run(name, func(t *testing.T) {
			if name == "matcher" && !d.hasMatcher() {
				t.Fatal("expected a parse tree")
			}
			if got, _ := d.MoveOffset(3, nil, 1, movement.Of(movement.MatchPairs), cursor.ModeNormal); got != 7 {
				t.Errorf("MatchPairs from ( = %d; want 7", got)
			}
			if got, _ := d.MoveOffset(7, nil, 1, movement.Of(movement.MatchPairs), cursor.ModeNormal); got != 3 {
				t.Errorf("MatchPairs from ) = %d; want 3", got)
			}
			if got, _ := d.MoveOffset(1, nil, 1, movement.Of(movement.MatchPairs), cursor.ModeNormal); got != 1 {
				t.Errorf("MatchPairs off a bracket should not move, got %d", got)
			}
		})
	}
}

func TestUnmatchedHeuristic(t *testing.T) {
	d := newDoc(t, "(a (b) c)")

	if got, _ := d.MoveOffset(1, nil, 1, movement.ToNextUnmatched(')'), cursor.ModeNormal); got != 8 {
		t.Errorf("NextUnmatched(')') = %d; want 8", got)
	}
	if got, _ := d.MoveOffset(7, nil, 1, movement.ToPreviousUnmatched('('), cursor.ModeNormal); got != 0 {
		t.Errorf("PreviousUnmatched('(') = %d; want 0", got)
	}
	if got, _ := d.MoveOffset(1, nil, 1, movement.ToNextUnmatched('}'), cursor.ModeNormal); got != 1 {
		t.Errorf("NextUnmatched without a match should not move, got %d", got)
	}
}

func TestUnmatchedWithMatcher(t *testing.T) {
	// Offsets: f0 (1 a2 (3 b4 )5 ,6 c7 )8
	const text = "f(a(b),c)"
	d := newDoc(t, text, WithSyntax(parsedSyntax(t, "x.js", text)))
	if !d.hasMatcher() {
		t.Fatal("expected a parse tree")
	}

	// The tree result is the bracket itself, with no adjustment.
	if got, _ := d.MoveOffset(2, nil, 1, movement.ToNextUnmatched(')'), cursor.ModeNormal); got != 8 {
		t.Errorf("NextUnmatched(')') = %d; want 8", got)
	}
	if got, _ := d.MoveOffset(7, nil, 1, movement.ToPreviousUnmatched('('), cursor.ModeNormal); got != 1 {
		t.Errorf("PreviousUnmatched('(') = %d; want 1", got)
	}
	// The bracket under the cursor is not its own match.
	if got, _ := d.MoveOffset(8, nil, 1, movement.ToNextUnmatched(')'), cursor.ModeNormal); got != 8 {
		t.Errorf("NextUnmatched from the last bracket should not move, got %d", got)
	}
	if got, _ := d.MoveOffset(2, nil, 1, movement.ToNextUnmatched(']'), cursor.ModeNormal); got != 2 {
		t.Errorf("NextUnmatched without a match should not move, got %d", got)
	}
}

func TestMoveCursorVisual(t *testing.T) {
	d := newDoc(t, "hello")
	c := cursor.New(cursor.Visual{Start: 1, End: 1})

	d.MoveCursor(c, movement.Of(movement.Right), 2, false)

	v, ok := c.State.(cursor.Visual)
	if !ok {
		t.Fatalf("expected visual state, got %s", c)
	}
	if v.Start != 1 || v.End != 3 {
		t.Errorf("got Visual(%d->%d); want Visual(1->3)", v.Start, v.End)
	}
}

func TestMoveCursorInsertRegions(t *testing.T) {
	tests := []struct {
		name   string
		modify bool
		want   [][2]int
	}{
		{"collapse", false, [][2]int{{1, 1}, {4, 4}}},
		{"modify", true, [][2]int{{0, 1}, {3, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDoc(t, "ab\ncd")
			sel := cursor.CaretSelection(0)
			sel.AddRegion(cursor.Caret(3))
			c := cursor.New(cursor.Insert{Selection: sel})

			d.MoveCursor(c, movement.Of(movement.Right), 1, tt.modify)

			ins, ok := c.State.(cursor.Insert)
			if !ok {
				t.Fatalf("expected insert state, got %s", c)
			}
			regions := ins.Selection.Regions()
			if len(regions) != len(tt.want) {
				t.Fatalf("got %d regions; want %d", len(regions), len(tt.want))
			}
			for i, r := range regions {
				if r.Start != tt.want[i][0] || r.End != tt.want[i][1] {
					t.Errorf("region %d = %s; want %v", i, r, tt.want[i])
				}
			}
		})
	}
}

func TestMoveCursorWithOperator(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		m      movement.Movement
		want   string
	}{
		{"word forward", "hello world", 0, movement.Of(movement.WordForward), "world"},
		{"end of line is inclusive", "hello world", 6, movement.Of(movement.EndOfLine), "hello "},
		{"word end is inclusive", "hello world", 0, movement.Of(movement.WordEndForward), " world"},
		{"match pairs forward", "foo(bar) x", 3, movement.Of(movement.MatchPairs), "foo x"},
		{"match pairs backward", "foo(bar) x", 7, movement.Of(movement.MatchPairs), "foo x"},
		{"left", "hello", 3, movement.Of(movement.Left), "helo"},
		{"down is linewise", "a\nb\nc", 0, movement.Of(movement.Down), "c"},
		{"up is linewise", "a\nb\nc", 4, movement.Of(movement.Up), "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDoc(t, tt.text)
			c := cursor.New(cursor.Normal{Offset: tt.offset})

			d.DoMotionMode(c, cursor.MotionDelete)
			d.MoveCursor(c, tt.m, 1, false)

			if got := d.Buffer().Text(); got != tt.want {
				t.Errorf("text = %q; want %q", got, tt.want)
			}
			if c.MotionMode != nil {
				t.Error("operator should be cleared after the motion")
			}
		})
	}
}

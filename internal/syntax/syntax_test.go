package syntax

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/doccore/internal/engine/buffer"
)

func mustParse(t *testing.T, path, text string) *Syntax {
	t.Helper()
	s, err := ForPath(path)
	if err != nil {
		t.Fatalf("ForPath(%q) failed: %v", path, err)
	}
	parsed, err := s.Parse(context.Background(), 1, text, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return parsed
}

func TestLanguageForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"main.go", "go", true},
		{"app.JS", "javascript", true},
		{"lib/x.h", "c", true},
		{"README", "", false},
		{"notes.txt", "", false},
	}

	for _, tt := range tests {
		lang, ok := LanguageForPath(tt.path)
		if ok != tt.ok {
			t.Errorf("LanguageForPath(%q) ok = %v; want %v", tt.path, ok, tt.ok)
			continue
		}
		if ok && lang.Name != tt.want {
			t.Errorf("LanguageForPath(%q) = %s; want %s", tt.path, lang.Name, tt.want)
		}
	}

	if _, err := ForPath("notes.txt"); !errors.Is(err, ErrNoLanguage) {
		t.Errorf("expected ErrNoLanguage, got %v", err)
	}
	if lang, _ := LanguageByName("go"); lang.Indent != "\t" {
		t.Errorf("expected tab indent for go, got %q", lang.Indent)
	}
}

func TestFindMatchingPair(t *testing.T) {
	s := mustParse(t, "x.js", "foo(bar)")

	if got, ok := s.FindMatchingPair(3); !ok || got != 7 {
		t.Errorf("FindMatchingPair(3) = %d,%v; want 7,true", got, ok)
	}
	if got, ok := s.FindMatchingPair(7); !ok || got != 3 {
		t.Errorf("FindMatchingPair(7) = %d,%v; want 3,true", got, ok)
	}
	if _, ok := s.FindMatchingPair(0); ok {
		t.Error("FindMatchingPair(0) should fail on an identifier")
	}
}

func TestFindTag(t *testing.T) {
	// Offsets: f0 (1 a2 (3 b4 )5 ,6 c7 )8
	s := mustParse(t, "x.js", "f(a(b),c)")

	if got, ok := s.FindTag(2, false, ')'); !ok || got != 8 {
		t.Errorf("FindTag forward = %d,%v; want 8,true", got, ok)
	}
	if got, ok := s.FindTag(7, true, '('); !ok || got != 1 {
		t.Errorf("FindTag backward = %d,%v; want 1,true", got, ok)
	}
	if _, ok := s.FindTag(2, false, 'x'); ok {
		t.Error("FindTag should reject non-bracket tags")
	}
}

func TestBracketsInStringsIgnored(t *testing.T) {
	src := "package p\n\nvar s = \"(\"\n\nfunc f() {}\n"
	s := mustParse(t, "p.go", src)

	open := 30 // the "(" after f
	if src[open] != '(' || src[open-1] != 'f' {
		t.Fatalf("test offsets are wrong: %q", src[open-1:open+1])
	}
	if got, ok := s.FindMatchingPair(open); !ok || got != open+1 {
		t.Errorf("FindMatchingPair(%d) = %d,%v; want %d,true", open, got, ok, open+1)
	}
	if _, ok := s.FindMatchingPair(20); ok {
		t.Error("bracket inside a string literal must not match")
	}
}

func TestHighlight(t *testing.T) {
	s := mustParse(t, "p.go", "package p\n\n// hi\nvar n = 42\n")

	found := map[string]bool{}
	for _, sp := range s.Styles.All() {
		found[sp.Style.FgColor] = true
		if sp.Style.FgColor == "keyword" && sp.Start == 0 && sp.End != 7 {
			t.Errorf("package keyword span should end at 7, got %d", sp.End)
		}
	}
	for _, want := range []string{"keyword", "comment", "number"} {
		if !found[want] {
			t.Errorf("expected a %s span, got %v", want, s.Styles.All())
		}
	}
}

func TestLensLevels(t *testing.T) {
	s := mustParse(t, "p.go", "package p\n\nfunc f() {\n\tx()\n}\n")

	want := []int{0, 0, 0, 1, 1, 0}
	if s.Lens.Len() != len(want) {
		t.Fatalf("expected %d lens lines, got %d", len(want), s.Lens.Len())
	}
	for line, level := range want {
		if got := s.Lens.Level(line); got != level {
			t.Errorf("line %d: expected level %d, got %d", line, level, got)
		}
	}
}

func TestLensApplyDelta(t *testing.T) {
	l := &Lens{levels: []int{0, 1, 2, 1, 0}}

	// Two new lines inserted inside line 2.
	ins := buffer.Delta{
		StartPoint:  buffer.Point{Line: 2, Column: 1},
		OldEndPoint: buffer.Point{Line: 2, Column: 1},
		NewEndPoint: buffer.Point{Line: 4, Column: 0},
	}
	got := l.ApplyDelta(ins)
	want := []int{0, 1, 2, 2, 2, 1, 0}
	if got.Len() != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), got.Len())
	}
	for i, w := range want {
		if got.Level(i) != w {
			t.Errorf("line %d: expected %d, got %d", i, w, got.Level(i))
		}
	}

	// Lines 1..3 joined into line 1.
	del := buffer.Delta{
		StartPoint:  buffer.Point{Line: 1, Column: 0},
		OldEndPoint: buffer.Point{Line: 3, Column: 0},
		NewEndPoint: buffer.Point{Line: 1, Column: 0},
	}
	got = l.ApplyDelta(del)
	if got.Len() != 3 || got.Level(1) != 1 || got.Level(2) != 0 {
		t.Errorf("unexpected lens after delete: %v", got.levels)
	}
	if l.Len() != 5 {
		t.Error("ApplyDelta must not modify the receiver")
	}
}

func TestIncrementalParse(t *testing.T) {
	buf := buffer.NewBufferFromString("foo(bar)")
	s := mustParse(t, "x.js", buf.Text())

	di, err := buf.Insert(0, "xx + ")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	shifted := s.Shift(di.Delta, true)
	if got, ok := shifted.FindMatchingPair(8); !ok || got != 12 {
		t.Errorf("shifted pair = %d,%v; want 12,true", got, ok)
	}
	if got, ok := s.FindMatchingPair(3); !ok || got != 7 {
		t.Error("Shift must not modify the receiver")
	}

	next, err := shifted.Parse(context.Background(), 2, buf.Text(), &di.Delta)
	if err != nil {
		t.Fatalf("incremental Parse failed: %v", err)
	}
	if next.Rev() != 2 || !next.HasTree() {
		t.Errorf("expected parsed rev 2, got rev %d tree %v", next.Rev(), next.HasTree())
	}
	if got, ok := next.FindMatchingPair(8); !ok || got != 12 {
		t.Errorf("reparsed pair = %d,%v; want 12,true", got, ok)
	}
}

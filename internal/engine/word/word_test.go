package word

import "testing"

func TestRunsMergeSegments(t *testing.T) {
	const text = "foo::bar  x"
	var runs []Run
	scanRuns(text, 0, len(text), func(r Run) bool {
		runs = append(runs, r)
		return true
	})
	want := []Run{
		{0, 3, ClassWord},
		{3, 5, ClassPunct},
		{5, 8, ClassWord},
		{8, 10, ClassSpace},
		{10, 11, ClassWord},
	}
	if len(runs) != len(want) {
		t.Fatalf("expected %d runs, got %d: %v", len(want), len(runs), runs)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d: expected %+v, got %+v", i, want[i], runs[i])
		}
	}
}

func TestNextBoundary(t *testing.T) {
	tests := []struct {
		text   string
		offset int
		want   int
		ok     bool
	}{
		{"hello world", 0, 6, true},
		{"hello world", 5, 6, true},
		{"hello world", 6, 11, true},
		{"hello world", 11, 0, false},
		{"foo::bar", 0, 3, true},
		{"foo::bar", 3, 5, true},
		{"a\n  b", 0, 4, true},
	}

	for _, tt := range tests {
		got, ok := NewScanner(tt.text, tt.offset).NextBoundary()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("NextBoundary(%q, %d) = %d,%v; want %d,%v", tt.text, tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPrevBoundary(t *testing.T) {
	tests := []struct {
		text   string
		offset int
		want   int
		ok     bool
	}{
		{"hello world", 8, 6, true},
		{"hello world", 6, 0, true},
		{"hello world", 3, 0, true},
		{"hello world", 0, 0, false},
		{"a\n\n  b", 5, 0, true},
		{"   x", 3, 0, false},
	}

	for _, tt := range tests {
		got, ok := NewScanner(tt.text, tt.offset).PrevBoundary()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("PrevBoundary(%q, %d) = %d,%v; want %d,%v", tt.text, tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEndBoundary(t *testing.T) {
	tests := []struct {
		text   string
		offset int
		want   int
		ok     bool
	}{
		{"hello world", 0, 5, true},
		{"hello world", 4, 11, true},
		{"hello world", 10, 0, false},
		{"a.b", 0, 2, true},
		{"cafe\u0301 x", 0, 6, true},
	}

	for _, tt := range tests {
		got, ok := NewScanner(tt.text, tt.offset).EndBoundary()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("EndBoundary(%q, %d) = %d,%v; want %d,%v", tt.text, tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMatchPairs(t *testing.T) {
	tests := []struct {
		text   string
		offset int
		want   int
		ok     bool
	}{
		{"foo(bar)", 3, 7, true},
		{"foo(bar)", 7, 3, true},
		{"foo(bar)", 0, 0, false},
		{"(a(b)c)", 0, 6, true},
		{"(a(b)c)", 6, 0, true},
		{"{[}", 0, 2, true},
	}

	for _, tt := range tests {
		got, ok := NewScanner(tt.text, tt.offset).MatchPairs()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("MatchPairs(%q, %d) = %d,%v; want %d,%v", tt.text, tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestUnmatched(t *testing.T) {
	s := NewScanner("(a(b)c)", 1)
	if got, ok := s.NextUnmatched(')'); !ok || got != 7 {
		t.Errorf("NextUnmatched = %d,%v; want 7,true", got, ok)
	}

	s = NewScanner("(a(b)c)", 5)
	if got, ok := s.PreviousUnmatched('('); !ok || got != 0 {
		t.Errorf("PreviousUnmatched = %d,%v; want 0,true", got, ok)
	}

	if _, ok := NewScanner("abc", 0).NextUnmatched('x'); ok {
		t.Error("NextUnmatched should reject non-bracket characters")
	}
	if _, ok := NewScanner("abc", 3).PreviousUnmatched('('); ok {
		t.Error("PreviousUnmatched should fail without a bracket")
	}
}

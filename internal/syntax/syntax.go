package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/style"
)

// Syntax is the result of parsing one revision of a document.
// A zero revision Syntax with no tree is what a document starts with.
type Syntax struct {
	lang *Language
	rev  uint64
	tree *sitter.Tree

	// Styles are the highlight spans of the parsed text.
	Styles *style.Spans

	// Lens holds per-line nesting levels.
	Lens *Lens

	matcher *matcher
}

// New returns an unparsed Syntax for lang.
func New(lang *Language) *Syntax {
	return &Syntax{lang: lang, Lens: &Lens{}, matcher: &matcher{}}
}

// ForPath returns an unparsed Syntax for the language of path.
func ForPath(path string) (*Syntax, error) {
	lang, ok := LanguageForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoLanguage, path)
	}
	return New(lang), nil
}

// Language returns the syntax language.
func (s *Syntax) Language() *Language {
	return s.lang
}

// Rev returns the buffer revision this syntax was parsed at.
func (s *Syntax) Rev() uint64 {
	return s.rev
}

// HasTree reports whether the syntax holds a parse tree.
func (s *Syntax) HasTree() bool {
	return s.tree != nil
}

// Parse parses text, the content of the buffer at revision rev, and returns
// the resulting Syntax. When delta is the edit that turned revision rev-1
// into rev and s was parsed at rev-1, the previous tree is reused.
// Parse does not modify s and is safe to call from another goroutine.
func (s *Syntax) Parse(ctx context.Context, rev uint64, text string, delta *buffer.Delta) (*Syntax, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(s.lang.grammar())

	var old *sitter.Tree
	if delta != nil && s.tree != nil && rev == s.rev+1 {
		old = s.tree.Copy()
		old.Edit(editInput(*delta))
	}

	src := []byte(text)
	tree, err := parser.ParseCtx(ctx, old, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s rev %d: %v", ErrParseFailed, s.lang.Name, rev, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: %s rev %d", ErrParseFailed, s.lang.Name, rev)
	}

	root := tree.RootNode()
	brackets := collectBrackets(root)
	m := newMatcher(brackets)

	return &Syntax{
		lang:    s.lang,
		rev:     rev,
		tree:    tree,
		Styles:  highlight(root, text, s.lang.classify),
		Lens:    newLens(text, m),
		matcher: m,
	}, nil
}

// editInput converts a buffer delta to a tree-sitter edit.
func editInput(d buffer.Delta) sitter.EditInput {
	return sitter.EditInput{
		StartIndex:  uint32(d.Start),
		OldEndIndex: uint32(d.End),
		NewEndIndex: uint32(d.NewEnd()),
		StartPoint:  sitterPoint(d.StartPoint),
		OldEndPoint: sitterPoint(d.OldEndPoint),
		NewEndPoint: sitterPoint(d.NewEndPoint),
	}
}

func sitterPoint(p buffer.Point) sitter.Point {
	return sitter.Point{Row: uint32(p.Line), Column: uint32(p.Column)}
}

// Shift returns a copy of s whose lens and bracket matcher follow an
// applied edit. The style spans are shifted too when styles is set; a
// document with a semantic overlay shifts the overlay instead.
func (s *Syntax) Shift(d buffer.Delta, styles bool) *Syntax {
	out := *s
	if styles {
		out.Styles = s.Styles.ApplyShape(d)
	}
	out.Lens = s.Lens.ApplyDelta(d)
	out.matcher = s.matcher.shift(d)
	return &out
}

// FindMatchingPair returns the offset of the bracket paired with the
// bracket token at offset.
func (s *Syntax) FindMatchingPair(offset int) (int, bool) {
	return s.matcher.pair(offset)
}

// FindTag returns the offset of the nearest bracket token equal to tag that
// is not balanced between offset and it, searching forward, or backward
// when previous is set. The token at offset itself is not considered.
func (s *Syntax) FindTag(offset int, previous bool, tag rune) (int, bool) {
	return s.matcher.findTag(offset, previous, tag)
}

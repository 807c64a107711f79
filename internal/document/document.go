package document

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/doccore/internal/engine/buffer"
	"github.com/dshills/doccore/internal/engine/editor"
	"github.com/dshills/doccore/internal/event"
	"github.com/dshills/doccore/internal/layout"
	"github.com/dshills/doccore/internal/logging"
	"github.com/dshills/doccore/internal/style"
	"github.com/dshills/doccore/internal/syntax"
)

// Content identifies what a document holds: a file on disk or an unsaved
// scratch buffer.
type Content struct {
	path string
}

// File returns the content of a document backed by path.
func File(path string) Content {
	return Content{path: path}
}

// Unsaved returns the content of a document with no backing file.
func Unsaved() Content {
	return Content{}
}

// Path returns the backing file path, if any.
func (c Content) Path() (string, bool) {
	return c.path, c.path != ""
}

// String returns the path, or "[unsaved]".
func (c Content) String() string {
	if c.path == "" {
		return "[unsaved]"
	}
	return c.path
}

// SyntaxUpdated is delivered to a document's ID when a background parse of
// revision Rev finished while Rev was still current.
type SyntaxUpdated struct {
	Path   string
	Rev    uint64
	Syntax *syntax.Syntax
}

// Supersedes reports whether u makes a queued result for the same file
// obsolete.
func (u SyntaxUpdated) Supersedes(queued any) bool {
	q, ok := queued.(SyntaxUpdated)
	return ok && q.Path == u.Path && q.Rev < u.Rev
}

// parseFunc parses text at rev starting from base.
type parseFunc func(ctx context.Context, base *syntax.Syntax, rev uint64, text string, delta *buffer.Delta) (*syntax.Syntax, error)

func parseSyntax(ctx context.Context, base *syntax.Syntax, rev uint64, text string, delta *buffer.Delta) (*syntax.Syntax, error) {
	return base.Parse(ctx, rev, text, delta)
}

// Document is the state of one open document.
type Document struct {
	id      uuid.UUID
	content Content
	buf     *buffer.Buffer

	syntax    *syntax.Syntax
	syntaxSet bool
	semantic  *style.Spans

	lineStyles *lineCache[[]style.LineStyle]
	layouts    *lineCache[*layout.TextLayout]
	layoutCfg  layout.Config
	theme      *style.Theme

	editor *editor.Editor
	sink   event.Sink
	logger *logging.Logger

	parse   parseFunc
	spawn   func(func())
	workers *sync.WaitGroup
}

// New creates an empty document. Parse results are submitted to sink
// addressed by the document's ID. Documents backed by a file get the
// syntax of the file's language, if it has one.
func New(content Content, sink event.Sink, opts ...Option) *Document {
	d := &Document{
		id:         uuid.New(),
		content:    content,
		buf:        buffer.NewBuffer(),
		lineStyles: newLineCache[[]style.LineStyle](),
		layouts:    newLineCache[*layout.TextLayout](),
		layoutCfg:  layout.DefaultConfig(),
		theme:      style.DefaultTheme(),
		sink:       sink,
		logger:     logging.Null(),
		parse:      parseSyntax,
		spawn:      func(f func()) { go f() },
		workers:    &sync.WaitGroup{},
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.editor == nil {
		d.editor = editor.New()
	}
	if !d.syntaxSet {
		if path, ok := content.Path(); ok {
			if s, err := syntax.ForPath(path); err == nil {
				d.syntax = s
			}
		}
	}
	d.buf.SetTabWidth(d.layoutCfg.TabWidth)
	d.logger = d.logger.WithComponent("document").WithField("doc", content.String())

	return d
}

// ID returns the identifier parse results are addressed to.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Content returns what the document holds.
func (d *Document) Content() Content {
	return d.content
}

// Buffer returns the text buffer. Callers must not edit it directly.
func (d *Document) Buffer() *buffer.Buffer {
	return d.buf
}

// Rev returns the buffer revision.
func (d *Document) Rev() uint64 {
	return d.buf.Rev()
}

// Syntax returns the current syntax, or nil.
func (d *Document) Syntax() *syntax.Syntax {
	return d.syntax
}

// SemanticStyles returns the semantic overlay, or nil.
func (d *Document) SemanticStyles() *style.Spans {
	return d.semantic
}

// Editor returns the edit engine.
func (d *Document) Editor() *editor.Editor {
	return d.editor
}

// LoadContent replaces the whole text, re-derives the indentation unit and
// schedules a full reparse. Undo history recorded against the old text is
// discarded.
func (d *Document) LoadContent(text string) {
	d.buf.LoadContent(text)
	d.editor.History().Clear()
	d.logger.Debug("loaded %d lines with %s line endings", d.buf.LineCount(), d.buf.SourceLineEnding())

	fallback := ""
	if d.syntax != nil {
		fallback = d.syntax.Language().Indent
	}
	d.buf.DetectIndent(fallback)

	d.onUpdate(nil)
}

// SetSyntax installs a syntax result. Cached styles are dropped unless a
// semantic overlay is installed, since the overlay takes precedence.
func (d *Document) SetSyntax(s *syntax.Syntax) {
	d.syntax = s
	if d.semantic == nil {
		d.clearStyleCache()
	}
}

// SetSemanticStyles installs or, with nil, removes the semantic overlay.
func (d *Document) SetSemanticStyles(spans *style.Spans) {
	d.semantic = spans
	d.clearStyleCache()
}

// SetConfig replaces the layout metrics and theme. A nil theme keeps the
// current one.
func (d *Document) SetConfig(cfg layout.Config, theme *style.Theme) {
	d.layoutCfg = cfg
	if theme != nil {
		d.theme = theme
	}
	d.buf.SetTabWidth(cfg.TabWidth)
	d.clearStyleCache()
}

// HandleSyntaxUpdated adopts a delivered parse result if it is for this
// document's file and its revision is still current. It reports whether
// the result was adopted.
func (d *Document) HandleSyntaxUpdated(msg SyntaxUpdated) bool {
	path, ok := d.content.Path()
	if !ok || msg.Path != path || msg.Syntax == nil {
		return false
	}
	if msg.Rev != d.buf.Rev() {
		d.logger.Debug("dropping syntax for rev %d at rev %d", msg.Rev, d.buf.Rev())
		return false
	}
	d.SetSyntax(msg.Syntax)
	return true
}

// HandleMessage handles a message delivered to the document's ID and
// reports whether it changed the document.
func (d *Document) HandleMessage(msg event.Message) bool {
	switch p := msg.Payload.(type) {
	case SyntaxUpdated:
		return d.HandleSyntaxUpdated(p)
	case *SyntaxUpdated:
		return p != nil && d.HandleSyntaxUpdated(*p)
	}
	d.logger.Warn("unexpected message %T", msg.Payload)
	return false
}

// Wait blocks until every dispatched parse has finished.
func (d *Document) Wait() {
	d.workers.Wait()
}

// applyDeltas brings derived state up to date after an edit, one delta at
// a time in the order they were applied.
func (d *Document) applyDeltas(deltas []buffer.DeltaInval) {
	for i := range deltas {
		delta := deltas[i].Delta
		d.updateStyles(delta)
		d.onUpdate(&delta)
	}
}

// updateStyles shifts style sources through an applied delta so spans
// outside the edit stay valid until the next parse.
func (d *Document) updateStyles(delta buffer.Delta) {
	if d.semantic != nil {
		d.semantic = d.semantic.ApplyShape(delta)
	}
	if d.syntax != nil {
		d.syntax = d.syntax.Shift(delta, d.semantic == nil)
	}
	d.clearStyleCache()
}

func (d *Document) onUpdate(delta *buffer.Delta) {
	d.clearStyleCache()
	d.triggerSyntaxChange(delta)
}

// clearStyleCache drops cached styles, and the layouts built from them.
func (d *Document) clearStyleCache() {
	d.lineStyles.clear()
	d.layouts.clear()
}

// LineStyle returns the style spans of a line relative to its start. The
// semantic overlay wins over syntax styles.
func (d *Document) LineStyle(line int) []style.LineStyle {
	return d.lineStyles.get(line, d.computeLineStyle)
}

func (d *Document) computeLineStyle(line int) []style.LineStyle {
	start := d.buf.OffsetOfLine(line)
	end := start + d.buf.LineLen(line)

	switch {
	case d.semantic != nil:
		return d.semantic.LineStyles(start, end)
	case d.syntax != nil && d.syntax.Styles != nil:
		return d.syntax.Styles.LineStyles(start, end)
	}
	return nil
}

// GetTextLayout returns the measured layout of a line. It panics if the
// layout cannot be built, which only happens with an invalid layout
// configuration.
func (d *Document) GetTextLayout(line int) *layout.TextLayout {
	return d.layouts.get(line, d.buildTextLayout)
}

func (d *Document) buildTextLayout(line int) *layout.TextLayout {
	l, err := layout.Build(d.buf.LineContent(line), d.layoutCfg, d.LineStyle(line), d.theme)
	if err != nil {
		panic(fmt.Sprintf("document: layout of line %d: %v", line, err))
	}
	return l
}

// PointOfLineCol returns the position of a column within its line's layout.
func (d *Document) PointOfLineCol(line, col int) layout.Point {
	return d.GetTextLayout(line).HitTestTextPosition(col)
}

// PointOfOffset returns the position of offset within its line's layout.
func (d *Document) PointOfOffset(offset int) layout.Point {
	line, col := d.buf.OffsetToLineCol(offset)
	return d.PointOfLineCol(line, col)
}

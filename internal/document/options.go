package document

import (
	"github.com/google/uuid"

	"github.com/dshills/doccore/internal/engine/editor"
	"github.com/dshills/doccore/internal/layout"
	"github.com/dshills/doccore/internal/logging"
	"github.com/dshills/doccore/internal/style"
	"github.com/dshills/doccore/internal/syntax"
)

// Option configures a Document.
type Option func(*Document)

// WithID sets the identifier parse results are addressed to.
// By default a random UUID is used.
func WithID(id uuid.UUID) Option {
	return func(d *Document) {
		d.id = id
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithEditor sets the edit engine, and with it the undo history and
// register.
func WithEditor(e *editor.Editor) Option {
	return func(d *Document) {
		if e != nil {
			d.editor = e
		}
	}
}

// WithSyntax sets the initial syntax instead of the one derived from the
// file extension. A nil syntax disables parsing.
func WithSyntax(s *syntax.Syntax) Option {
	return func(d *Document) {
		d.syntax = s
		d.syntaxSet = true
	}
}

// WithLayoutConfig sets the metrics used to build line layouts.
func WithLayoutConfig(cfg layout.Config) Option {
	return func(d *Document) {
		d.layoutCfg = cfg
	}
}

// WithTheme sets the theme line layouts resolve styles through.
func WithTheme(t *style.Theme) Option {
	return func(d *Document) {
		if t != nil {
			d.theme = t
		}
	}
}

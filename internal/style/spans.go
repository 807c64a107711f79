package style

import (
	"sort"

	"github.com/dshills/doccore/internal/engine/buffer"
)

// Span is a styled half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
	Style Style
}

// LineStyle is a styled range relative to the start of a line.
type LineStyle struct {
	Start int
	End   int
	Style Style
}

// Spans is an immutable, offset-ordered list of non-empty spans.
type Spans struct {
	spans []Span
}

// NewSpans builds a span list. Empty spans are dropped and the rest are
// ordered by start offset.
func NewSpans(spans []Span) *Spans {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.End > sp.Start {
			out = append(out, sp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return &Spans{spans: out}
}

// Len returns the number of spans.
func (s *Spans) Len() int {
	if s == nil {
		return 0
	}
	return len(s.spans)
}

// All returns the spans in offset order. The slice must not be modified.
func (s *Spans) All() []Span {
	if s == nil {
		return nil
	}
	return s.spans
}

// ApplyShape returns the spans mapped through an applied delta. Spans
// before the change are kept, spans after it are shifted, and spans that
// overlap it keep only the parts outside the replaced range. Inserted text
// is unstyled until the next parse.
func (s *Spans) ApplyShape(d buffer.Delta) *Spans {
	if s == nil {
		return nil
	}
	shift := d.LenDelta()
	out := make([]Span, 0, len(s.spans)+1)

	for _, sp := range s.spans {
		switch {
		case sp.End <= d.Start:
			out = append(out, sp)
		case sp.Start >= d.End:
			out = append(out, Span{Start: sp.Start + shift, End: sp.End + shift, Style: sp.Style})
		default:
			if sp.Start < d.Start {
				out = append(out, Span{Start: sp.Start, End: d.Start, Style: sp.Style})
			}
			if sp.End > d.End {
				out = append(out, Span{Start: d.NewEnd(), End: sp.End + shift, Style: sp.Style})
			}
		}
	}
	return NewSpans(out)
}

// LineStyles returns the spans intersecting [lineStart, lineEnd), clipped
// to the line and made relative to lineStart.
func (s *Spans) LineStyles(lineStart, lineEnd int) []LineStyle {
	if s == nil || lineEnd <= lineStart {
		return nil
	}

	// Spans may nest, so ends are not ordered; only starts bound the scan.
	n := sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].Start >= lineEnd
	})

	var out []LineStyle
	for _, sp := range s.spans[:n] {
		if sp.End <= lineStart {
			continue
		}
		start, end := sp.Start, sp.End
		if start < lineStart {
			start = lineStart
		}
		if end > lineEnd {
			end = lineEnd
		}
		out = append(out, LineStyle{Start: start - lineStart, End: end - lineStart, Style: sp.Style})
	}
	return out
}

package cursor

import (
	"fmt"
	"strings"

	"github.com/dshills/doccore/internal/engine/buffer"
)

// SelRegion is one region of a selection. Start is the anchor and End the
// caret, so End may be smaller than Start.
type SelRegion struct {
	Start int
	End   int
	Horiz *ColPosition
}

// Caret returns a zero-width region at offset.
func Caret(offset int) SelRegion {
	return SelRegion{Start: offset, End: offset}
}

// Region returns a region anchored at start with the caret at end.
func Region(start, end int) SelRegion {
	return SelRegion{Start: start, End: end}
}

// Min returns the lower bound of the region.
func (r SelRegion) Min() int {
	if r.Start <= r.End {
		return r.Start
	}
	return r.End
}

// Max returns the upper bound of the region.
func (r SelRegion) Max() int {
	if r.Start >= r.End {
		return r.Start
	}
	return r.End
}

// IsCaret returns true if the region has no extent.
func (r SelRegion) IsCaret() bool {
	return r.Start == r.End
}

// String returns a string representation of the region.
func (r SelRegion) String() string {
	if r.IsCaret() {
		return fmt.Sprintf("Caret(%d)", r.End)
	}
	return fmt.Sprintf("Region(%d->%d)", r.Start, r.End)
}

// transform maps the region through an applied delta. The caret follows
// insertions made at its position; the anchor does not.
func (r SelRegion) transform(d buffer.Delta) SelRegion {
	if r.IsCaret() {
		off := d.Transform(r.End, true)
		return SelRegion{Start: off, End: off, Horiz: r.Horiz}
	}
	return SelRegion{
		Start: d.Transform(r.Start, r.Start > r.End),
		End:   d.Transform(r.End, r.End > r.Start),
		Horiz: r.Horiz,
	}
}

// Selection is an ordered collection of regions. Order is insertion order.
type Selection struct {
	regions []SelRegion
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// CaretSelection returns a selection holding one caret.
func CaretSelection(offset int) *Selection {
	return &Selection{regions: []SelRegion{Caret(offset)}}
}

// RegionSelection returns a selection holding one region.
func RegionSelection(start, end int) *Selection {
	return &Selection{regions: []SelRegion{Region(start, end)}}
}

// AddRegion appends a region.
func (s *Selection) AddRegion(r SelRegion) {
	s.regions = append(s.regions, r)
}

// Regions returns the regions in insertion order.
// The returned slice must not be modified.
func (s *Selection) Regions() []SelRegion {
	return s.regions
}

// Len returns the number of regions.
func (s *Selection) Len() int {
	return len(s.regions)
}

// IsEmpty returns true if the selection holds no regions.
func (s *Selection) IsEmpty() bool {
	return len(s.regions) == 0
}

// IsCaret returns true if every region is a caret.
func (s *Selection) IsCaret() bool {
	for _, r := range s.regions {
		if !r.IsCaret() {
			return false
		}
	}
	return true
}

// Last returns the most recently added region.
func (s *Selection) Last() (SelRegion, bool) {
	if len(s.regions) == 0 {
		return SelRegion{}, false
	}
	return s.regions[len(s.regions)-1], true
}

// Offset returns the caret of the most recently added region, or 0.
func (s *Selection) Offset() int {
	if r, ok := s.Last(); ok {
		return r.End
	}
	return 0
}

// MinOffset returns the smallest offset covered by any region.
func (s *Selection) MinOffset() int {
	if len(s.regions) == 0 {
		return 0
	}
	m := s.regions[0].Min()
	for _, r := range s.regions[1:] {
		if r.Min() < m {
			m = r.Min()
		}
	}
	return m
}

// MaxOffset returns the largest offset covered by any region.
func (s *Selection) MaxOffset() int {
	m := 0
	for _, r := range s.regions {
		if r.Max() > m {
			m = r.Max()
		}
	}
	return m
}

// Collapse returns a selection with every region reduced to its caret.
func (s *Selection) Collapse() *Selection {
	out := &Selection{regions: make([]SelRegion, len(s.regions))}
	for i, r := range s.regions {
		out.regions[i] = Caret(r.End)
	}
	return out
}

// Clone returns a copy of the selection.
func (s *Selection) Clone() *Selection {
	out := &Selection{regions: make([]SelRegion, len(s.regions))}
	copy(out.regions, s.regions)
	return out
}

// ApplyDelta returns the selection mapped through an applied delta.
func (s *Selection) ApplyDelta(d buffer.Delta) *Selection {
	out := &Selection{regions: make([]SelRegion, len(s.regions))}
	for i, r := range s.regions {
		out.regions[i] = r.transform(d)
	}
	return out
}

// String returns a string representation of the selection.
func (s *Selection) String() string {
	parts := make([]string, len(s.regions))
	for i, r := range s.regions {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

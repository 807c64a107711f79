package layout

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/doccore/internal/style"
)

// Config holds the font metrics a layout is measured with.
type Config struct {
	FontSize   int
	CellWidth  float64 // width of one terminal cell in x units
	LineHeight float64
	TabWidth   int // in cells
}

// DefaultConfig returns a configuration where one cell is one x unit.
func DefaultConfig() Config {
	return Config{FontSize: 12, CellWidth: 1, LineHeight: 1, TabWidth: 4}
}

// Validate checks that the configuration can measure text.
func (c Config) Validate() error {
	if c.CellWidth <= 0 {
		return fmt.Errorf("%w: cell width %g", ErrInvalidConfig, c.CellWidth)
	}
	if c.TabWidth < 1 {
		return fmt.Errorf("%w: tab width %d", ErrInvalidConfig, c.TabWidth)
	}
	if c.LineHeight < 0 {
		return fmt.Errorf("%w: line height %g", ErrInvalidConfig, c.LineHeight)
	}
	return nil
}

// Point is a position in layout coordinates.
type Point struct {
	X float64
	Y float64
}

// Cluster is one measured grapheme cluster.
type Cluster struct {
	Offset int // byte index in the line
	Text   string
	Cell   int // first cell
	Cells  int // width in cells
	Style  tcell.Style
}

// End returns the byte index just past the cluster.
func (c Cluster) End() int {
	return c.Offset + len(c.Text)
}

// TextLayout is a measured line.
type TextLayout struct {
	text     string
	clusters []Cluster
	cells    int
	cfg      Config
}

// Build measures text, a single line without its line ending, and applies
// styles resolved through theme. styles must lie within the line.
func Build(text string, cfg Config, styles []style.LineStyle, theme *style.Theme) (*TextLayout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, ls := range styles {
		if ls.Start < 0 || ls.End < ls.Start || ls.End > len(text) {
			return nil, fmt.Errorf("%w: [%d, %d) in line of %d bytes", ErrStyleRange, ls.Start, ls.End, len(text))
		}
	}

	l := &TextLayout{text: text, cfg: cfg}
	base := theme.Base()

	rest := text
	offset, cell := 0, 0
	state := -1
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		width := runewidth.StringWidth(cluster)
		if cluster == "\t" {
			width = cfg.TabWidth - cell%cfg.TabWidth
		}

		st := base
		for _, ls := range styles {
			if offset >= ls.Start && offset < ls.End {
				st = theme.Resolve(ls.Style)
			}
		}

		l.clusters = append(l.clusters, Cluster{
			Offset: offset,
			Text:   cluster,
			Cell:   cell,
			Cells:  width,
			Style:  st,
		})
		offset += len(cluster)
		cell += width
	}
	l.cells = cell
	return l, nil
}

// Text returns the measured text.
func (l *TextLayout) Text() string {
	return l.text
}

// Clusters returns the measured clusters in order.
func (l *TextLayout) Clusters() []Cluster {
	return l.clusters
}

// Cells returns the width of the line in cells.
func (l *TextLayout) Cells() int {
	return l.cells
}

// Width returns the width of the line in x units.
func (l *TextLayout) Width() float64 {
	return float64(l.cells) * l.cfg.CellWidth
}

// HitTestPoint returns the byte index of the cluster boundary nearest to x.
// Points left of the line map to 0 and points right of it to the end.
func (l *TextLayout) HitTestPoint(x float64) int {
	for _, c := range l.clusters {
		left := float64(c.Cell) * l.cfg.CellWidth
		right := float64(c.Cell+c.Cells) * l.cfg.CellWidth
		if x < right {
			if x < (left+right)/2 {
				return c.Offset
			}
			return c.End()
		}
	}
	return len(l.text)
}

// HitTestTextPosition returns the position of the leading edge of the
// cluster containing byte index idx. Indexes past the end map to the end of
// the line.
func (l *TextLayout) HitTestTextPosition(idx int) Point {
	for _, c := range l.clusters {
		if idx < c.End() {
			return Point{X: float64(c.Cell) * l.cfg.CellWidth}
		}
	}
	return Point{X: l.Width()}
}

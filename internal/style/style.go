package style

import (
	"github.com/gdamore/tcell/v2"
)

// Style describes how a range of text is drawn. FgColor names a theme
// entry such as "keyword" or "string" rather than a concrete colour, so a
// theme change does not require restyling.
type Style struct {
	FgColor string
	Attrs   tcell.AttrMask
}

// IsZero returns true if the style carries nothing.
func (s Style) IsZero() bool {
	return s.FgColor == "" && s.Attrs == tcell.AttrNone
}

// Theme maps style colour names to colours.
type Theme struct {
	Foreground tcell.Color
	Background tcell.Color
	Colors     map[string]tcell.Color
}

// DefaultTheme returns a theme using the terminal's default colours and a
// small palette for common syntax captures.
func DefaultTheme() *Theme {
	return &Theme{
		Foreground: tcell.ColorDefault,
		Background: tcell.ColorDefault,
		Colors: map[string]tcell.Color{
			"keyword":  tcell.ColorPurple,
			"string":   tcell.ColorGreen,
			"comment":  tcell.ColorGray,
			"number":   tcell.ColorOrange,
			"function": tcell.ColorBlue,
			"type":     tcell.ColorTeal,
		},
	}
}

// Color looks up a colour name.
func (t *Theme) Color(name string) (tcell.Color, bool) {
	if t == nil || name == "" {
		return tcell.ColorDefault, false
	}
	c, ok := t.Colors[name]
	return c, ok
}

// Base returns the style of unstyled text.
func (t *Theme) Base() tcell.Style {
	if t == nil {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(t.Foreground).Background(t.Background)
}

// Resolve returns the terminal style for s. Unknown colour names keep the
// theme foreground.
func (t *Theme) Resolve(s Style) tcell.Style {
	ts := withAttrs(t.Base(), s.Attrs)
	if c, ok := t.Color(s.FgColor); ok {
		ts = ts.Foreground(c)
	}
	return ts
}

// withAttrs sets the attributes in attrs on ts.
func withAttrs(ts tcell.Style, attrs tcell.AttrMask) tcell.Style {
	if attrs&tcell.AttrBold != 0 {
		ts = ts.Bold(true)
	}
	if attrs&tcell.AttrDim != 0 {
		ts = ts.Dim(true)
	}
	if attrs&tcell.AttrItalic != 0 {
		ts = ts.Italic(true)
	}
	if attrs&tcell.AttrUnderline != 0 {
		ts = ts.Underline(true)
	}
	if attrs&tcell.AttrReverse != 0 {
		ts = ts.Reverse(true)
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		ts = ts.StrikeThrough(true)
	}
	return ts
}

package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/doccore/internal/style"
)

// ParseColor parses a theme colour: "#rrggbb", "#rgb", a named terminal
// colour such as "red" or "darkcyan", or "default".
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "default" {
		return tcell.ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b := c.Clamped().RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
	}
	if c := tcell.GetColor(s); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// BuildTheme returns the default theme with the [theme] table applied.
// The keys "foreground" and "background" set the base colours; every other
// key names a style colour such as "keyword".
func (s Settings) BuildTheme() (*style.Theme, error) {
	theme := style.DefaultTheme()

	keys := make([]string, 0, len(s.Theme))
	for k := range s.Theme {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		c, err := ParseColor(s.Theme[k])
		if err != nil {
			errs = append(errs, fmt.Errorf("theme.%s: %w", k, err))
			continue
		}
		switch k {
		case "foreground":
			theme.Foreground = c
		case "background":
			theme.Background = c
		default:
			theme.Colors[k] = c
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return theme, nil
}

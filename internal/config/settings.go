package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/doccore/internal/layout"
	"github.com/dshills/doccore/internal/logging"
)

// Settings are the user-facing settings of the document core.
type Settings struct {
	TabWidth   int               `toml:"tab_width"`
	FontSize   int               `toml:"font_size"`
	CellWidth  float64           `toml:"cell_width"`
	LineHeight float64           `toml:"line_height"`
	LogLevel   string            `toml:"log_level"`
	Theme      map[string]string `toml:"theme"`
}

// Default returns the built-in settings.
func Default() Settings {
	lc := layout.DefaultConfig()
	return Settings{
		TabWidth:   lc.TabWidth,
		FontSize:   lc.FontSize,
		CellWidth:  lc.CellWidth,
		LineHeight: lc.LineHeight,
		LogLevel:   "info",
	}
}

// Validate checks every setting and reports all problems at once.
func (s Settings) Validate() error {
	var errs []error
	if s.TabWidth < 1 || s.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("%w: tab_width %d not in [1, 16]", ErrInvalidSetting, s.TabWidth))
	}
	if s.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: font_size must be positive", ErrInvalidSetting))
	}
	if s.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("%w: cell_width must be positive", ErrInvalidSetting))
	}
	if s.LineHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: line_height must be positive", ErrInvalidSetting))
	}
	if _, ok := logging.ParseLevel(s.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("%w: log_level %q", ErrInvalidSetting, s.LogLevel))
	}
	if _, err := s.BuildTheme(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Layout returns the layout configuration the settings describe.
func (s Settings) Layout() layout.Config {
	return layout.Config{
		FontSize:   s.FontSize,
		CellWidth:  s.CellWidth,
		LineHeight: s.LineHeight,
		TabWidth:   s.TabWidth,
	}
}

// Level returns the configured log level.
func (s Settings) Level() logging.Level {
	level, _ := logging.ParseLevel(s.LogLevel)
	return level
}

// Load reads settings from a TOML file. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML settings over the defaults and validates the result.
// source names the data in errors.
func Parse(source string, data []byte) (Settings, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return Settings{}, pe
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", source, err)
	}
	return s, nil
}

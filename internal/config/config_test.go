package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/doccore/internal/logging"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default settings should validate: %v", err)
	}
	lc := Default().Layout()
	if err := lc.Validate(); err != nil {
		t.Errorf("default layout config should validate: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
tab_width = 8
log_level = "debug"

[theme]
keyword = "#ff0000"
background = "black"
`)
	s, err := Parse("test.toml", data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.TabWidth != 8 {
		t.Errorf("expected tab_width 8, got %d", s.TabWidth)
	}
	if s.FontSize != Default().FontSize {
		t.Errorf("unset font_size should keep the default, got %d", s.FontSize)
	}
	if s.Level() != logging.LevelDebug {
		t.Errorf("expected debug level, got %v", s.Level())
	}

	theme, err := s.BuildTheme()
	if err != nil {
		t.Fatalf("BuildTheme failed: %v", err)
	}
	if c, _ := theme.Color("keyword"); c != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("expected red keyword, got %v", c)
	}
	if theme.Background != tcell.ColorBlack {
		t.Errorf("expected black background, got %v", theme.Background)
	}
	if _, ok := theme.Color("string"); !ok {
		t.Error("default palette entries should survive")
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("bad.toml", []byte("tab_width = = 3\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Path != "bad.toml" || pe.Line != 1 {
		t.Errorf("unexpected parse error %+v", pe)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("x.toml", []byte("tab_widht = 3\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		want   error
	}{
		{"tab width", func(s *Settings) { s.TabWidth = 0 }, ErrInvalidSetting},
		{"font size", func(s *Settings) { s.FontSize = -1 }, ErrInvalidSetting},
		{"cell width", func(s *Settings) { s.CellWidth = 0 }, ErrInvalidSetting},
		{"log level", func(s *Settings) { s.LogLevel = "loud" }, ErrInvalidSetting},
		{"color", func(s *Settings) { s.Theme = map[string]string{"keyword": "#zz"} }, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			if err := s.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#00ff00", tcell.NewRGBColor(0, 255, 0), false},
		{"#fff", tcell.NewRGBColor(255, 255, 255), false},
		{"Red", tcell.ColorRed, false},
		{"default", tcell.ColorDefault, false},
		{"#12", tcell.ColorDefault, true},
		{"no-such-colour", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.TabWidth != Default().TabWidth {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doccore.toml")
	if err := os.WriteFile(path, []byte("tab_width = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Settings, 4)
	if err := Watch(ctx, path, nil, func(s Settings) { changes <- s }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("tab_width = 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-changes:
		if s.TabWidth != 6 {
			t.Errorf("expected reloaded tab_width 6, got %d", s.TabWidth)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

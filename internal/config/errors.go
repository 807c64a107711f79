package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for settings.
var (
	// ErrInvalidSetting is returned when a setting is out of range.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrInvalidColor is returned when a theme colour cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")
)

// ParseError represents an error while parsing a settings file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

package editor

import "errors"

// Errors returned by edit operations.
var (
	// ErrUnknownCommand is returned when a command name cannot be parsed.
	ErrUnknownCommand = errors.New("unknown edit command")

	// ErrNotInsertMode is returned by Insert when the cursor is not in insert mode.
	ErrNotInsertMode = errors.New("cursor is not in insert mode")
)

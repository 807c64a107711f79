// Package app wires a document, its cursor and its supporting services
// into a session driven by a line-oriented script.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the script asked to stop.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called twice concurrently.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrUnknownInstruction indicates a script line names nothing known.
	ErrUnknownInstruction = errors.New("unknown instruction")

	// ErrBadArgument indicates a script line has a malformed argument.
	ErrBadArgument = errors.New("bad argument")
)

// InitError reports which component failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// LineError is a script failure with the line it happened on.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

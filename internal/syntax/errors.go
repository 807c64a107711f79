package syntax

import "errors"

// Errors returned by syntax operations.
var (
	ErrNoLanguage  = errors.New("no language for path")
	ErrParseFailed = errors.New("parse failed")
)

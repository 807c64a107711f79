package layout

import "errors"

// Errors returned by Build.
var (
	ErrInvalidConfig = errors.New("invalid layout config")
	ErrStyleRange    = errors.New("style range outside line")
)

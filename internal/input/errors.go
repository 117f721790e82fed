package input

import "errors"

// Errors returned by bind-time validation. Queries never return errors.
var (
	ErrEmptyAction   = errors.New("action name is empty")
	ErrNoSources     = errors.New("no input sources")
	ErrInvalidSource = errors.New("invalid input source")
	ErrUnknownName   = errors.New("unknown input name")
)

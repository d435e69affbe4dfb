package cli

import "errors"

// Common CLI errors
var (
	ErrNoInput = errors.New("no input: pass an argument or pipe text on stdin")
)

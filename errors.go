package compressor

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidLevel indicates a compression level outside 1-4.
	ErrInvalidLevel = errors.New("compressor: level must be between 1 and 4")

	// ErrInvalidPattern indicates a custom preserve pattern failed to compile.
	ErrInvalidPattern = errors.New("compressor: invalid preserve pattern")
)

package types

import "errors"

// Lookup errors. The wardrobe reports these conditions as absent results;
// the CLI maps them to these sentinels for messages and exit codes.
var (
	ErrNotFound   = errors.New("garment not found")
	ErrOutOfRange = errors.New("position out of range")
)

// Input errors raised by the CLI glue.
var (
	ErrEmptyField    = errors.New("field must not be empty")
	ErrInvalidOption = errors.New("invalid menu option")
)

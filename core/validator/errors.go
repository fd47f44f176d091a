package validator

import "errors"

var (
	// ErrEmptyName indicates a rule was registered without a name.
	ErrEmptyName = errors.New("validator: rule name cannot be empty")

	// ErrNilRule indicates a descriptor carries no function for its kind.
	ErrNilRule = errors.New("validator: rule function cannot be nil")
)

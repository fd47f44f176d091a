package message

import "errors"

var (
	// ErrEmptyRule is returned when a template is registered without a rule name.
	ErrEmptyRule = errors.New("message: rule name cannot be empty")

	// ErrEmptyTemplate is returned when a default or rule template is empty.
	ErrEmptyTemplate = errors.New("message: template cannot be empty")
)

package formfile

import "errors"

var (
	// ErrNoRules is returned when a form definition declares no rules.
	ErrNoRules = errors.New("formfile: definition has no rules")

	// ErrInvalidValue is returned when a value is a table or an array of
	// tables, which cannot be a form field value.
	ErrInvalidValue = errors.New("formfile: invalid field value")
)

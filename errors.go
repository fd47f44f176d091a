package formrules

import "errors"

// Construction errors. Field failures are reported in Result, never as errors.
var (
	// ErrUnknownRule is returned by New in strict mode when a rule string
	// names a rule that is not registered.
	ErrUnknownRule = errors.New("formrules: unknown rule")

	// ErrInvalidTrigger is returned when validateOn is not submit, keyup or blur.
	ErrInvalidTrigger = errors.New("formrules: invalid trigger")

	// ErrNilRule is returned when a custom rule has no function.
	ErrNilRule = errors.New("formrules: custom rule is nil")
)

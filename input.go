package formrules

import (
	"strings"

	"github.com/dmitrymomot/formrules/core/relation"
	"github.com/dmitrymomot/formrules/core/validator"
)

// Input carries the current field values of a form. It has the same shape
// as binder.Payload, so a bound request converts with Input(payload).
type Input struct {
	Values map[string]string          `json:"values"`
	Files  map[string]*validator.File `json:"files,omitempty"`
}

// Values builds an Input from plain field values.
func Values(values map[string]string) Input {
	return Input{Values: values}
}

func (in Input) value(field string) (string, bool) {
	v, ok := in.Values[field]
	return strings.TrimSpace(v), ok
}

func (in Input) file(field string) *validator.File {
	f := in.Files[field]
	if f == nil || f.Name == "" {
		return nil
	}
	return f
}

// Outcome is the result of evaluating one field.
type Outcome struct {
	Field string `json:"field"`
	OK    bool   `json:"ok"`
	// Message is the formatted error when OK is false.
	Message string `json:"message,omitempty"`
	// Rule names the failing rule when OK is false.
	Rule string `json:"rule,omitempty"`
	// Value is the field value after transforms ran.
	Value string `json:"value"`
	// Skipped is set for optional fields left empty.
	Skipped bool `json:"skipped,omitempty"`
}

// Result is the outcome of one validation pass.
type Result struct {
	Outcomes map[string]Outcome `json:"outcomes"`
	// FormValid holds when no field has an error and every required field
	// last validated successfully.
	FormValid bool `json:"form_valid"`
	// SubmitEnabled is false only when submit gating is on and the form
	// is not valid.
	SubmitEnabled bool             `json:"submit_enabled"`
	Cascade       relation.Cascade `json:"cascade"`
	// Values holds the value of every field the form has seen, after
	// transforms and cascaded clears.
	Values map[string]string `json:"values"`
}

// Failed returns the outcomes that did not pass, keyed by field.
func (r Result) Failed() map[string]Outcome {
	out := make(map[string]Outcome)
	for field, o := range r.Outcomes {
		if !o.OK {
			out[field] = o
		}
	}
	return out
}

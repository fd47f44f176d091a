package rules

import "strings"

// Params holds the parameters of one rule. The zero value means the rule
// was written without parameters. Values are kept verbatim; validators
// coerce them when they need numbers.
type Params struct {
	values []string
	list   bool
}

// NoParams is the parameter set of a bare rule such as "required".
var NoParams = Params{}

// Single returns a single string parameter.
func Single(v string) Params {
	return Params{values: []string{v}}
}

// List returns an ordered parameter list. Duplicates are preserved.
func List(vs ...string) Params {
	return Params{values: append([]string(nil), vs...), list: true}
}

// parseParams splits a raw parameter string the way the grammar defines:
// a comma turns it into a list, otherwise it is a single string.
func parseParams(raw string) Params {
	if strings.Contains(raw, ",") {
		return List(strings.Split(raw, ",")...)
	}
	return Single(raw)
}

// IsSet reports whether any parameter was supplied.
func (p Params) IsSet() bool { return len(p.values) > 0 }

// IsList reports whether the parameters were written as a comma list.
func (p Params) IsList() bool { return p.list }

// First returns the first parameter, or "" when none was supplied.
func (p Params) First() string {
	if len(p.values) == 0 {
		return ""
	}
	return p.values[0]
}

// Last returns the last parameter, or "" when none was supplied.
func (p Params) Last() string {
	if len(p.values) == 0 {
		return ""
	}
	return p.values[len(p.values)-1]
}

// Values returns a copy of all parameters. A single parameter yields a
// one-element slice.
func (p Params) Values() []string {
	return append([]string(nil), p.values...)
}

// Len returns the number of parameters.
func (p Params) Len() int { return len(p.values) }

// String renders the parameters back into rule-string form.
func (p Params) String() string {
	return strings.Join(p.values, ",")
}

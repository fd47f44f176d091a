package rules

import "maps"

// Reserved rule names with parser-level meaning.
const (
	Required  = "required"
	Enable    = "enable"
	Same      = "same"
	Different = "different"
	Clear     = "clear"
	Strength  = "strength"
	Preview   = "preview"
	Remaining = "remaining"
	Allow     = "allow"
)

// RuleSpec is one parsed rule of a field.
type RuleSpec struct {
	Name   string
	Params Params
}

// String renders the rule back into its token form.
func (r RuleSpec) String() string {
	if !r.Params.IsSet() {
		return r.Name
	}
	return r.Name + ":" + r.Params.String()
}

// Raw maps a field name to its unparsed rule string.
type Raw map[string]string

// RuleSet maps a field name to its ordered rules.
type RuleSet map[string][]RuleSpec

// String renders a field's rules back into a normalized rule string.
func (rs RuleSet) String(field string) string {
	specs := rs[field]
	out := make([]byte, 0, len(specs)*8)
	for i, spec := range specs {
		if i > 0 {
			out = append(out, '|')
		}
		out = append(out, spec.String()...)
	}
	return string(out)
}

// Merge combines rules discovered in markup with caller supplied rules.
// Caller rules win on key collision. Neither input is modified.
func Merge(inline, caller Raw) Raw {
	out := make(Raw, len(inline)+len(caller))
	maps.Copy(out, inline)
	maps.Copy(out, caller)
	return out
}

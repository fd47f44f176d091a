package rules

import (
	"slices"

	"github.com/dmitrymomot/formrules/core/relation"
)

// Directives holds presentational rules. They never take part in
// pass/fail evaluation.
type Directives struct {
	// Strength lists fields that show a value strength meter.
	Strength map[string]bool
	// Preview lists fields that mirror their value into a preview.
	Preview map[string]bool
	// Remaining maps a field to its raw character limit parameter.
	Remaining map[string]string
	// Allow maps a field to the character class accepted on keystroke.
	Allow map[string]string
}

// Schema is the parsed form configuration: ordered rules per field plus
// everything derived from them while parsing.
type Schema struct {
	Rules      RuleSet
	Relations  *relation.Table
	Required   map[string]struct{}
	Directives Directives
}

func newSchema() *Schema {
	return &Schema{
		Rules:     make(RuleSet),
		Relations: relation.NewTable(),
		Required:  make(map[string]struct{}),
		Directives: Directives{
			Strength:  make(map[string]bool),
			Preview:   make(map[string]bool),
			Remaining: make(map[string]string),
			Allow:     make(map[string]string),
		},
	}
}

// IsRequired reports whether field declared the required rule.
func (s *Schema) IsRequired(field string) bool {
	_, ok := s.Required[field]
	return ok
}

// Has reports whether field has a rule entry.
func (s *Schema) Has(field string) bool {
	_, ok := s.Rules[field]
	return ok
}

// Fields returns all field names with a rule entry, sorted.
func (s *Schema) Fields() []string {
	fields := make([]string, 0, len(s.Rules))
	for field := range s.Rules {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Names returns every distinct rule name used by the schema, sorted.
func (s *Schema) Names() []string {
	seen := make(map[string]struct{})
	for _, specs := range s.Rules {
		for _, spec := range specs {
			seen[spec.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

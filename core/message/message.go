package message

import (
	"fmt"
	"maps"
	"strings"

	"github.com/dmitrymomot/formrules/core/rules"
)

// Overrides holds caller-supplied templates keyed by field, then rule.
type Overrides map[string]map[string]string

// Lookup returns the override for a field and rule, if any.
func (o Overrides) Lookup(field, rule string) (string, bool) {
	if o == nil {
		return "", false
	}
	tpl, ok := o[field][rule]
	return tpl, ok && tpl != ""
}

// Formatter turns a failed rule into a human-readable message.
// It is immutable after creation and safe for concurrent use.
type Formatter struct {
	templates       map[string]string
	displayNames    map[string]string
	fallback        string
	missingTemplate func(field, rule string)
}

// Option configures the Formatter during construction.
type Option func(*Formatter) error

// New creates a Formatter loaded with the built-in templates.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		templates:    maps.Clone(builtinTemplates),
		displayNames: make(map[string]string),
		fallback:     DefaultTemplate,
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return f, nil
}

// WithTemplates adds or replaces rule templates for every field.
func WithTemplates(templates map[string]string) Option {
	return func(f *Formatter) error {
		for rule, tpl := range templates {
			if rule == "" {
				return ErrEmptyRule
			}
			if tpl == "" {
				return fmt.Errorf("%w: rule %q", ErrEmptyTemplate, rule)
			}
			f.templates[rule] = tpl
		}
		return nil
	}
}

// WithDisplayNames sets the names substituted for :field.
func WithDisplayNames(names map[string]string) Option {
	return func(f *Formatter) error {
		for field, name := range names {
			if name != "" {
				f.displayNames[field] = name
			}
		}
		return nil
	}
}

// WithDefault replaces the template used for rules without one.
func WithDefault(tpl string) Option {
	return func(f *Formatter) error {
		if tpl == "" {
			return ErrEmptyTemplate
		}
		f.fallback = tpl
		return nil
	}
}

// WithMissingTemplateHandler sets a function called whenever a failure
// falls back to the default template.
func WithMissingTemplateHandler(handler func(field, rule string)) Option {
	return func(f *Formatter) error {
		f.missingTemplate = handler
		return nil
	}
}

// Format renders the message for a field that failed rule. Resolution order
// is the per-field override, the rule template, then the default template.
func (f *Formatter) Format(field, rule string, params rules.Params, overrides Overrides) string {
	tpl, ok := overrides.Lookup(field, rule)
	if !ok {
		tpl, ok = f.templates[rule]
	}
	if !ok {
		if f.missingTemplate != nil {
			f.missingTemplate(field, rule)
		}
		tpl = f.fallback
	}

	param := params.First()
	tpl = strings.Replace(tpl, PlaceholderField, f.DisplayName(field), 1)
	tpl = strings.Replace(tpl, PlaceholderRuleValue, param, 1)
	tpl = strings.Replace(tpl, PlaceholderParameter, param, 1)
	return tpl
}

// DisplayName returns the configured display name of a field, or the field
// name itself.
func (f *Formatter) DisplayName(field string) string {
	if name, ok := f.displayNames[field]; ok {
		return name
	}
	return field
}

// Template returns the template registered for a rule.
func (f *Formatter) Template(rule string) (string, bool) {
	tpl, ok := f.templates[rule]
	return tpl, ok
}

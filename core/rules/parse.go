package rules

import "strings"

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	known map[string]struct{}
}

// WithKnownFields restricts parsing to fields that exist on the form.
// Rules for any other field are skipped without error, so stale
// configuration never breaks a form.
func WithKnownFields(names ...string) ParseOption {
	return func(c *parseConfig) {
		if c.known == nil {
			c.known = make(map[string]struct{}, len(names))
		}
		for _, name := range names {
			c.known[name] = struct{}{}
		}
	}
}

// Parse turns raw rule strings into a Schema.
//
// Tokens are separated by "|"; a token is either "name" or
// "name:params", where params containing a comma become a list.
// The required rule is always moved to the front and enable rules to the
// back; every other rule keeps its source order. Unknown rule names are
// accepted as-is.
func Parse(raw Raw, opts ...ParseOption) *Schema {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	s := newSchema()
	for field, str := range raw {
		if cfg.known != nil {
			if _, ok := cfg.known[field]; !ok {
				continue
			}
		}
		parseField(s, field, str)
	}
	return s
}

func parseField(s *Schema, field, str string) {
	var (
		required *RuleSpec
		body     []RuleSpec
		enables  []RuleSpec
	)

	for _, token := range tokenize(str) {
		spec := parseToken(token)
		switch spec.Name {
		case Required:
			if required == nil {
				required = &spec
			}
		case Enable:
			enables = append(enables, spec)
		default:
			body = append(body, spec)
		}
	}

	specs := make([]RuleSpec, 0, len(body)+len(enables)+1)
	if required != nil {
		specs = append(specs, *required)
		s.Required[field] = struct{}{}
	}

	for _, spec := range append(body, enables...) {
		switch spec.Name {
		case Strength:
			s.Directives.Strength[field] = true
			continue
		case Preview:
			s.Directives.Preview[field] = true
			continue
		case Remaining:
			s.Directives.Remaining[field] = spec.Params.First()
			continue
		case Allow:
			kind := spec.Params.First()
			if kind == "" {
				kind = "alpha"
			}
			s.Directives.Allow[field] = kind
			continue
		// Relational rules stay in the field's rules as well: the table only
		// drives cascades, the comparison itself runs as a predicate.
		case Same:
			if target := spec.Params.First(); target != "" {
				s.Relations.AddSame(target, field)
			}
		case Different:
			if target := spec.Params.First(); target != "" {
				s.Relations.AddDifferent(target, field)
			}
		case Enable:
			if source := spec.Params.First(); source != "" {
				s.Relations.AddEnable(source, field)
			}
		case Clear:
			if target := spec.Params.First(); target != "" {
				s.Relations.AddClear(field, target)
			}
		}
		specs = append(specs, spec)
	}

	s.Rules[field] = specs
}

// tokenize splits a rule string on "|" and drops empty tokens left behind
// by stray separators.
func tokenize(str string) []string {
	parts := strings.Split(str, "|")
	tokens := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func parseToken(token string) RuleSpec {
	name, params, ok := strings.Cut(token, ":")
	spec := RuleSpec{Name: strings.TrimSpace(name)}
	if ok && params != "" {
		spec.Params = parseParams(params)
	}
	return spec
}

package validator

import (
	"fmt"
	"maps"
	"slices"
)

// Kind distinguishes rules that judge a value from rules that rewrite it.
type Kind uint8

const (
	// KindPredicate rules inspect the value and pass or fail.
	KindPredicate Kind = iota + 1
	// KindTransform rules rewrite the value and always pass.
	KindTransform
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPredicate:
		return "predicate"
	case KindTransform:
		return "transform"
	default:
		return "unknown"
	}
}

// Predicate judges the value in ctx.
type Predicate func(ctx Context) bool

// Transform returns the normalized value for ctx.
type Transform func(ctx Context) string

// Descriptor is a registered rule tagged with its kind.
type Descriptor struct {
	Kind      Kind
	Predicate Predicate
	Transform Transform
}

// PredicateRule wraps fn into a predicate descriptor.
func PredicateRule(fn Predicate) Descriptor {
	return Descriptor{Kind: KindPredicate, Predicate: fn}
}

// TransformRule wraps fn into a transform descriptor.
func TransformRule(fn Transform) Descriptor {
	return Descriptor{Kind: KindTransform, Transform: fn}
}

// Apply runs the descriptor against ctx and returns whether the rule
// passed together with the value subsequent rules must see.
func (d Descriptor) Apply(ctx Context) (bool, string) {
	switch d.Kind {
	case KindPredicate:
		return d.Predicate(ctx), ctx.Value
	case KindTransform:
		return true, d.Transform(ctx)
	default:
		return true, ctx.Value
	}
}

func (d Descriptor) valid() bool {
	switch d.Kind {
	case KindPredicate:
		return d.Predicate != nil
	case KindTransform:
		return d.Transform != nil
	default:
		return false
	}
}

// Registry maps rule names to descriptors. Each form owns its own
// registry, so custom rules never leak between forms.
// A Registry is not safe for concurrent registration.
type Registry struct {
	entries map[string]Descriptor
}

// New returns a registry preloaded with every built-in rule.
func New() *Registry {
	r := &Registry{entries: make(map[string]Descriptor, len(builtinPredicates)+len(builtinTransforms))}
	for name, fn := range builtinPredicates {
		r.entries[name] = PredicateRule(fn)
	}
	for name, fn := range builtinTransforms {
		r.entries[name] = TransformRule(fn)
	}
	return r
}

// Register adds or replaces a rule. The last registration wins.
func (r *Registry) Register(name string, d Descriptor) error {
	if name == "" {
		return ErrEmptyName
	}
	if !d.valid() {
		return fmt.Errorf("%w: %q", ErrNilRule, name)
	}
	r.entries[name] = d
	return nil
}

// RegisterPredicate adds or replaces a predicate rule.
func (r *Registry) RegisterPredicate(name string, fn Predicate) error {
	return r.Register(name, PredicateRule(fn))
}

// RegisterTransform adds or replaces a transform rule.
func (r *Registry) RegisterTransform(name string, fn Transform) error {
	return r.Register(name, TransformRule(fn))
}

// Resolve looks a rule up by name.
func (r *Registry) Resolve(name string) (Descriptor, bool) {
	d, ok := r.entries[name]
	return d, ok
}

// Names returns all registered rule names, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Missing returns the names that have no registered rule, preserving
// input order.
func (r *Registry) Missing(names []string) []string {
	var missing []string
	for _, name := range names {
		if _, ok := r.entries[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

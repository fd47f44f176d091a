package formrules

import (
	"slices"

	"github.com/dmitrymomot/formrules/core/logger"
	"github.com/dmitrymomot/formrules/core/relation"
	"github.com/dmitrymomot/formrules/core/rules"
	"github.com/dmitrymomot/formrules/core/validator"
)

// pass holds the state of one Validate call. It is the validator.Form
// view relational rules see. A sibling resolves to, in order: its value
// settled earlier in the pass, its stored value when the caller's input is
// the one it was last evaluated with, or the result of running its rules
// over the new input without recording anything.
type pass struct {
	form      *Form
	in        Input
	resolved  map[string]string
	resolving map[string]bool
	cleared   map[string]bool
	done      map[string]bool
	outcomes  map[string]Outcome
	cascade   relation.Cascade
}

func newPass(f *Form, in Input) *pass {
	return &pass{
		form:      f,
		in:        in,
		resolved:  make(map[string]string),
		resolving: make(map[string]bool),
		cleared:   make(map[string]bool),
		done:      make(map[string]bool),
		outcomes:  make(map[string]Outcome),
	}
}

// Value implements validator.Form. Fields with rules always resolve, even
// when the caller sent no value for them.
func (p *pass) Value(name string) (string, bool) {
	if v, ok := p.resolved[name]; ok {
		return v, true
	}
	f := p.form
	if !f.schema.Has(name) {
		return p.in.value(name)
	}
	raw := p.raw(name)
	if prev, seen := f.raw[name]; seen && prev == raw {
		return f.values[name], true
	}
	return p.preview(name, raw), true
}

// Passed implements validator.Form.
func (p *pass) Passed(name string) bool {
	return p.form.passed[name]
}

// raw returns the trimmed input of a field, falling back to the input it
// was last evaluated with.
func (p *pass) raw(field string) string {
	if v, ok := p.in.value(field); ok {
		return v
	}
	return p.form.raw[field]
}

// edited reports whether the caller sent a value for field other than the
// one it was last evaluated with.
func (p *pass) edited(field string) bool {
	v, ok := p.in.value(field)
	if !ok {
		return false
	}
	prev, seen := p.form.raw[field]
	return !seen || prev != v
}

func (p *pass) evaluate(field string) {
	f := p.form

	raw := p.raw(field)
	file := p.in.file(field)
	if p.cleared[field] {
		raw, file = "", nil
	}
	previous, seen := f.raw[field]
	changed := seen && previous != raw

	if raw == "" && file == nil && !f.schema.IsRequired(field) {
		p.succeed(field, raw, raw, changed, true)
		return
	}

	p.resolving[field] = true
	value, failed := p.run(field, raw, file)
	delete(p.resolving, field)

	if failed != nil {
		p.fail(field, raw, value, *failed)
		return
	}
	p.succeed(field, raw, value, changed, false)
}

// preview runs a sibling's rules over raw and returns the value it would
// settle on. Nothing is recorded. A sibling already being resolved yields
// raw, which breaks reference cycles.
func (p *pass) preview(field, raw string) string {
	file := p.in.file(field)
	if p.resolving[field] || (raw == "" && file == nil && !p.form.schema.IsRequired(field)) {
		return raw
	}

	p.resolving[field] = true
	defer delete(p.resolving, field)

	value, _ := p.run(field, raw, file)
	return value
}

// run applies the rules of field in order, stopping at the first failing
// predicate. It returns the value after transforms and the failing rule.
func (p *pass) run(field, raw string, file *validator.File) (string, *rules.RuleSpec) {
	f := p.form

	value := raw
	for _, spec := range f.schema.Rules[field] {
		d, ok := f.registry.Resolve(spec.Name)
		if !ok {
			f.log.Debug("unknown rule skipped", logger.Field(field), logger.Rule(spec.Name))
			continue
		}

		ok, value = d.Apply(validator.Context{
			Name:   field,
			Value:  value,
			Rule:   spec.Name,
			Params: spec.Params,
			File:   file,
			Form:   p,
		})
		if !ok {
			return value, &spec
		}
	}
	return value, nil
}

func (p *pass) store(field, raw, value string) {
	p.form.raw[field] = raw
	p.form.values[field] = value
	p.resolved[field] = value
	p.done[field] = true
}

func (p *pass) succeed(field, raw, value string, changed, skipped bool) {
	f := p.form

	delete(f.errors, field)
	f.passed[field] = true
	p.store(field, raw, value)

	c := f.tracker.OnFieldChanged(field, true)
	c.Clear = slices.DeleteFunc(c.Clear, func(dep string) bool {
		return !p.stale(field, dep, value, changed)
	})
	for _, dep := range c.Clear {
		p.clear(dep)
	}
	if !c.IsEmpty() {
		f.log.Debug("cascade",
			logger.Field(field),
			logger.Key("clear", c.Clear),
			logger.Key("enable", c.Enable),
		)
	}
	p.cascade = p.cascade.Merge(c)

	p.outcomes[field] = Outcome{Field: field, OK: true, Value: value, Skipped: skipped}
}

func (p *pass) fail(field, raw, value string, spec rules.RuleSpec) {
	f := p.form

	msg := f.formatter.Format(field, spec.Name, spec.Params, f.overrides)
	f.errors[field] = msg
	f.passed[field] = false
	p.store(field, raw, value)

	p.cascade = p.cascade.Merge(f.tracker.OnFieldChanged(field, false))

	o := Outcome{Field: field, Message: msg, Rule: spec.Name, Value: value}
	p.outcomes[field] = o

	f.log.Debug("rule failed", logger.Field(field), logger.Rule(spec.Name))
	if f.onFieldError != nil {
		f.onFieldError(o)
	}
}

// stale reports whether dep must be reset after source settled on value.
// A same or different dependent is stale once the input of source
// changed; a clear target whenever it holds a value other than source's.
func (p *pass) stale(source, dep, value string, changed bool) bool {
	f := p.form
	if !f.schema.Has(dep) || dep == source {
		return false
	}
	if changed && slices.Contains(f.tracker.Dependents(source), dep) {
		return true
	}
	if slices.Contains(f.tracker.Targets(source), dep) {
		current, _ := p.Value(dep)
		return current != "" && current != value
	}
	return false
}

// clear resets a stale dependent. Its verdict is dropped either way, but
// a dependent already evaluated in this pass was compared against the new
// value and is left alone, and one the caller edited keeps its new input.
// Otherwise it is evaluated as empty for the rest of the pass.
func (p *pass) clear(field string) {
	f := p.form
	if p.done[field] {
		return
	}

	delete(f.errors, field)
	delete(f.passed, field)
	if p.edited(field) {
		return
	}

	f.raw[field] = ""
	f.values[field] = ""
	p.resolved[field] = ""
	p.cleared[field] = true
}

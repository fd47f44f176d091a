package formrules

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/formrules/core/logger"
	"github.com/dmitrymomot/formrules/core/message"
	"github.com/dmitrymomot/formrules/core/relation"
	"github.com/dmitrymomot/formrules/core/rules"
	"github.com/dmitrymomot/formrules/core/validator"
)

// Form validates one form. It owns its rules, registry, messages and
// per-field state, so forms never share configuration.
//
// A Form is not safe for concurrent use; callers serialize trigger events.
type Form struct {
	schema    *rules.Schema
	registry  *validator.Registry
	formatter *message.Formatter
	tracker   *relation.Tracker
	order     []string
	log       *slog.Logger

	inline      rules.Raw
	parseOpts   []rules.ParseOption
	messageOpts []message.Option
	overrides   message.Overrides

	validateOn    Trigger
	disableSubmit bool
	strict        bool
	debounce      time.Duration

	onSuccess    func(map[string]string)
	onFail       func(map[string]string)
	onFieldError func(Outcome)

	errors map[string]string
	passed map[string]bool
	values map[string]string
	// raw holds the trimmed input each field was last evaluated with.
	raw map[string]string
}

// New parses raw rule strings and returns a Form ready to validate.
func New(raw rules.Raw, opts ...Option) (*Form, error) {
	f := &Form{
		registry:   validator.New(),
		log:        logger.Discard(),
		overrides:  make(message.Overrides),
		validateOn: TriggerSubmit,
		debounce:   DefaultKeyupDebounce,
		errors:     make(map[string]string),
		passed:     make(map[string]bool),
		values:     make(map[string]string),
		raw:        make(map[string]string),
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	formatter, err := message.New(append(f.messageOpts,
		message.WithMissingTemplateHandler(func(field, rule string) {
			f.log.Debug("no message template", logger.Field(field), logger.Rule(rule))
		}),
	)...)
	if err != nil {
		return nil, fmt.Errorf("failed to build message formatter: %w", err)
	}
	f.formatter = formatter

	f.schema = rules.Parse(rules.Merge(f.inline, raw), f.parseOpts...)
	f.tracker = relation.NewTracker(f.schema.Relations)
	f.order = evaluationOrder(f.schema)

	if missing := f.registry.Missing(f.schema.Names()); len(missing) > 0 {
		if f.strict {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, strings.Join(missing, ", "))
		}
		f.log.Warn("unknown rules pass silently",
			logger.Component("formrules"),
			logger.Key("rules", missing),
		)
	}

	return f, nil
}

// Validate evaluates fields against in. With submit set every field is
// evaluated and the fields argument is ignored. Form validity is always
// recomputed over the whole form.
func (f *Form) Validate(in Input, submit bool, fields ...string) Result {
	start := time.Now()

	targets := f.order
	if !submit {
		targets = f.selectFields(fields)
	}

	p := newPass(f, in)
	for _, field := range targets {
		p.evaluate(field)
	}

	res := Result{
		Outcomes:  p.outcomes,
		FormValid: f.Valid(),
		Cascade:   p.cascade,
		Values:    maps.Clone(f.values),
	}
	res.SubmitEnabled = !f.disableSubmit || res.FormValid

	trigger := "field"
	if submit {
		trigger = string(TriggerSubmit)
	}
	f.log.Debug("validation pass",
		logger.Trigger(trigger),
		logger.Count("fields", len(targets)),
		logger.Count("errors", len(f.errors)),
		logger.Valid(res.FormValid),
		logger.Elapsed(start),
	)

	if submit {
		switch {
		case res.FormValid && f.onSuccess != nil:
			f.onSuccess(maps.Clone(f.values))
		case !res.FormValid && f.onFail != nil:
			f.onFail(maps.Clone(f.errors))
		}
	}

	return res
}

// Submit evaluates every field.
func (f *Form) Submit(in Input) Result {
	return f.Validate(in, true)
}

// Check evaluates a single field, as on blur or keyup.
func (f *Form) Check(in Input, field string) Result {
	return f.Validate(in, false, field)
}

// Valid reports whether no field has an error and every required field
// last validated successfully.
func (f *Form) Valid() bool {
	if len(f.errors) > 0 {
		return false
	}
	for field := range f.schema.Required {
		if !f.passed[field] {
			return false
		}
	}
	return true
}

// Errors returns a copy of the current error table.
func (f *Form) Errors() map[string]string {
	return maps.Clone(f.errors)
}

// Error returns the current error of a field.
func (f *Form) Error(field string) (string, bool) {
	msg, ok := f.errors[field]
	return msg, ok
}

// Values returns a copy of the last evaluated field values.
func (f *Form) Values() map[string]string {
	return maps.Clone(f.values)
}

// Fields returns the validated field names in submit order.
func (f *Form) Fields() []string {
	return slices.Clone(f.order)
}

// Rules returns the normalized rule string of a field.
func (f *Form) Rules(field string) string {
	return f.schema.Rules.String(field)
}

// Schema exposes the parsed form configuration.
func (f *Form) Schema() *rules.Schema {
	return f.schema
}

// ValidateOn returns the configured trigger granularity.
func (f *Form) ValidateOn() Trigger {
	return f.validateOn
}

// Triggers lists the events callers should validate on. Submit is always
// included.
func (f *Form) Triggers() []Trigger {
	if f.validateOn == TriggerSubmit {
		return []Trigger{TriggerSubmit}
	}
	return []Trigger{f.validateOn, TriggerSubmit}
}

// KeyupDebounce returns how long callers should wait after the last
// keystroke before validating on keyup.
func (f *Form) KeyupDebounce() time.Duration {
	return f.debounce
}

// Enabled reports whether every field gating field last passed.
func (f *Form) Enabled(field string) bool {
	for _, source := range f.schema.Relations.Gates(field) {
		if f.schema.Has(source) && !f.passed[source] {
			return false
		}
	}
	return true
}

// Reset forgets all per-field state.
func (f *Form) Reset() {
	clear(f.errors)
	clear(f.passed)
	clear(f.values)
	clear(f.raw)
}

func (f *Form) selectFields(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if !f.schema.Has(field) {
			f.log.Debug("field has no rules", logger.Field(field))
			continue
		}
		if !slices.Contains(out, field) {
			out = append(out, field)
		}
	}
	return out
}

// evaluationOrder sorts fields by name and then moves every field after
// the fields it references through same, different or enable, and every
// clear target after the fields declaring it, so a submit pass compares
// against values already evaluated.
func evaluationOrder(s *rules.Schema) []string {
	fields := s.Fields()
	depth := make(map[string]int, len(fields))
	visiting := make(map[string]bool)

	var walk func(string) int
	walk = func(field string) int {
		if d, ok := depth[field]; ok {
			return d
		}
		if visiting[field] {
			return 0
		}
		visiting[field] = true
		d := 0
		for _, ref := range references(s, field) {
			if s.Has(ref) && ref != field {
				d = max(d, walk(ref)+1)
			}
		}
		visiting[field] = false
		depth[field] = d
		return d
	}

	for _, field := range fields {
		walk(field)
	}

	slices.SortStableFunc(fields, func(a, b string) int {
		return depth[a] - depth[b]
	})
	return fields
}

func references(s *rules.Schema, field string) []string {
	var refs []string
	for _, spec := range s.Rules[field] {
		switch spec.Name {
		case rules.Same, rules.Different, rules.Enable:
			if ref := spec.Params.First(); ref != "" {
				refs = append(refs, ref)
			}
		}
	}
	for source, targets := range s.Relations.Clear {
		if slices.Contains(targets, field) {
			refs = append(refs, source)
		}
	}
	return refs
}

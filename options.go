package formrules

import (
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/formrules/core/message"
	"github.com/dmitrymomot/formrules/core/rules"
	"github.com/dmitrymomot/formrules/core/validator"
)

// Option configures a Form during construction.
type Option func(*Form) error

// WithCustomMessages sets per-field, per-rule message templates.
// They take precedence over every built-in template.
func WithCustomMessages(overrides message.Overrides) Option {
	return func(f *Form) error {
		for field, byRule := range overrides {
			if f.overrides[field] == nil {
				f.overrides[field] = make(map[string]string, len(byRule))
			}
			maps.Copy(f.overrides[field], byRule)
		}
		return nil
	}
}

// WithMessages replaces rule templates for every field of the form.
func WithMessages(templates map[string]string) Option {
	return func(f *Form) error {
		f.messageOpts = append(f.messageOpts, message.WithTemplates(templates))
		return nil
	}
}

// WithDefaultMessage replaces the template used for rules without one.
func WithDefaultMessage(tpl string) Option {
	return func(f *Form) error {
		f.messageOpts = append(f.messageOpts, message.WithDefault(tpl))
		return nil
	}
}

// WithDisplayNames sets the human-readable names used for :field.
func WithDisplayNames(names map[string]string) Option {
	return func(f *Form) error {
		f.messageOpts = append(f.messageOpts, message.WithDisplayNames(names))
		return nil
	}
}

// WithCustomRules registers predicate rules on this form only. A custom
// rule replaces a built-in of the same name.
func WithCustomRules(preds map[string]validator.Predicate) Option {
	return func(f *Form) error {
		for name, fn := range preds {
			if fn == nil {
				return fmt.Errorf("%w: %q", ErrNilRule, name)
			}
			if err := f.registry.RegisterPredicate(name, fn); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithCustomTransforms registers transform rules on this form only.
func WithCustomTransforms(transforms map[string]validator.Transform) Option {
	return func(f *Form) error {
		for name, fn := range transforms {
			if fn == nil {
				return fmt.Errorf("%w: %q", ErrNilRule, name)
			}
			if err := f.registry.RegisterTransform(name, fn); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithInlineRules merges rules discovered on the form markup. Rules passed
// to New win when both name the same field.
func WithInlineRules(inline rules.Raw) Option {
	return func(f *Form) error {
		f.inline = rules.Merge(f.inline, inline)
		return nil
	}
}

// WithKnownFields limits the form to fields that exist on the page. Rules
// for other fields are ignored.
func WithKnownFields(names ...string) Option {
	return func(f *Form) error {
		f.parseOpts = append(f.parseOpts, rules.WithKnownFields(names...))
		return nil
	}
}

// WithLogger sets the logger. Evaluation details are logged at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(f *Form) error {
		if log != nil {
			f.log = log
		}
		return nil
	}
}

// WithValidateOn sets the trigger granularity callers should wire.
func WithValidateOn(t Trigger) Option {
	return func(f *Form) error {
		parsed, err := ParseTrigger(string(t))
		if err != nil {
			return err
		}
		f.validateOn = parsed
		return nil
	}
}

// WithDisableSubmit gates submission on form validity.
func WithDisableSubmit(disable bool) Option {
	return func(f *Form) error {
		f.disableSubmit = disable
		return nil
	}
}

// WithStrictRules makes New fail with ErrUnknownRule when a rule string
// names a rule that is not registered.
func WithStrictRules(strict bool) Option {
	return func(f *Form) error {
		f.strict = strict
		return nil
	}
}

// WithKeyupDebounce sets the delay reported by KeyupDebounce.
func WithKeyupDebounce(d time.Duration) Option {
	return func(f *Form) error {
		if d > 0 {
			f.debounce = d
		}
		return nil
	}
}

// WithConfig applies environment-driven settings.
func WithConfig(cfg Config) Option {
	return func(f *Form) error {
		if cfg.ValidateOn != "" {
			if err := WithValidateOn(Trigger(cfg.ValidateOn))(f); err != nil {
				return err
			}
		}
		f.disableSubmit = cfg.DisableSubmit
		f.strict = cfg.Strict
		if cfg.KeyupDebounce > 0 {
			f.debounce = cfg.KeyupDebounce
		}
		return nil
	}
}

// OnSuccess is called with the form values after a submit pass that left
// the form valid.
func OnSuccess(fn func(values map[string]string)) Option {
	return func(f *Form) error {
		f.onSuccess = fn
		return nil
	}
}

// OnFail is called with the error table after a submit pass that left the
// form invalid.
func OnFail(fn func(errors map[string]string)) Option {
	return func(f *Form) error {
		f.onFail = fn
		return nil
	}
}

// OnFieldError is called for every field failure, on any trigger.
func OnFieldError(fn func(Outcome)) Option {
	return func(f *Form) error {
		f.onFieldError = fn
		return nil
	}
}

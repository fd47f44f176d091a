package formfile

import (
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dmitrymomot/formrules"
	"github.com/dmitrymomot/formrules/core/message"
	"github.com/dmitrymomot/formrules/core/rules"
)

// Definition is a form described in TOML.
//
//	validate_on = "blur"
//	disable_submit = true
//
//	[rules]
//	email = "required|email"
//
//	[display]
//	email = "e-mail address"
//
//	[messages.email]
//	email = "Please enter a valid e-mail address"
//
//	[values]
//	email = "user@example.com"
type Definition struct {
	ValidateOn    string                       `toml:"validate_on"`
	DisableSubmit *bool                        `toml:"disable_submit"`
	Strict        *bool                        `toml:"strict"`
	Rules         map[string]string            `toml:"rules"`
	Display       map[string]string            `toml:"display"`
	Messages      map[string]map[string]string `toml:"messages"`
	Values        map[string]any               `toml:"values"`
}

// Load reads and parses a form definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a form definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	if len(def.Rules) == 0 {
		return nil, ErrNoRules
	}
	return &def, nil
}

// Options converts the definition's settings into form options. They are
// meant to follow environment options so the file wins.
func (d *Definition) Options() []formrules.Option {
	var opts []formrules.Option
	if d.ValidateOn != "" {
		opts = append(opts, formrules.WithValidateOn(formrules.Trigger(d.ValidateOn)))
	}
	if d.DisableSubmit != nil {
		opts = append(opts, formrules.WithDisableSubmit(*d.DisableSubmit))
	}
	if d.Strict != nil {
		opts = append(opts, formrules.WithStrictRules(*d.Strict))
	}
	if len(d.Display) > 0 {
		opts = append(opts, formrules.WithDisplayNames(d.Display))
	}
	if len(d.Messages) > 0 {
		opts = append(opts, formrules.WithCustomMessages(message.Overrides(d.Messages)))
	}
	return opts
}

// Build creates the form. Extra options are applied before the
// definition's own settings.
func (d *Definition) Build(opts ...formrules.Option) (*formrules.Form, error) {
	return formrules.New(rules.Raw(d.Rules), append(opts, d.Options()...)...)
}

// FieldValues returns the [values] table as strings.
func (d *Definition) FieldValues() (map[string]string, error) {
	return stringify(d.Values)
}

// LoadValues reads field values from a TOML file. Values may sit in a
// [values] table or at the top level.
func LoadValues(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if table, ok := raw["values"].(map[string]any); ok {
		raw = table
	}

	values, err := stringify(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return values, nil
}

func stringify(raw map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for name, v := range raw {
		s, err := scalar(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, name)
		}
		out[name] = s
	}
	return out, nil
}

func scalar(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", nil
	default:
		if s, ok := v.(fmt.Stringer); ok {
			return s.String(), nil
		}
		return "", ErrInvalidValue
	}
}

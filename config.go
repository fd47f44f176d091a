package formrules

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmitrymomot/formrules/core/config"
)

// Trigger is the UI event granularity a form is validated on.
type Trigger string

const (
	TriggerSubmit Trigger = "submit"
	TriggerKeyup  Trigger = "keyup"
	TriggerBlur   Trigger = "blur"
)

// DefaultKeyupDebounce is the delay callers should wait after the last
// keystroke before validating on keyup.
const DefaultKeyupDebounce = time.Second

// ParseTrigger converts a configuration string to a Trigger.
func ParseTrigger(s string) (Trigger, error) {
	t := Trigger(s)
	if !slices.Contains([]Trigger{TriggerSubmit, TriggerKeyup, TriggerBlur}, t) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTrigger, s)
	}
	return t, nil
}

// Config holds the environment-driven form settings.
type Config struct {
	ValidateOn    string        `env:"FORMRULES_VALIDATE_ON" envDefault:"submit"`
	DisableSubmit bool          `env:"FORMRULES_DISABLE_SUBMIT" envDefault:"false"`
	Strict        bool          `env:"FORMRULES_STRICT" envDefault:"false"`
	KeyupDebounce time.Duration `env:"FORMRULES_KEYUP_DEBOUNCE" envDefault:"1s"`
	LogLevel      string        `env:"FORMRULES_LOG_LEVEL" envDefault:"info"`
	// LogFormat is text or json.
	LogFormat string `env:"FORMRULES_LOG_FORMAT" envDefault:"text"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		ValidateOn:    string(TriggerSubmit),
		KeyupDebounce: DefaultKeyupDebounce,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

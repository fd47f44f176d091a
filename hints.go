package formrules

import (
	"regexp"
	"strconv"
	"unicode"

	"github.com/dmitrymomot/formrules/core/validator"
)

// Hint carries presentational state for one field. None of it affects
// validity.
type Hint struct {
	// ShowStrength is set by the strength directive; Strength is then a
	// score from 0 to 4.
	ShowStrength bool `json:"show_strength,omitempty"`
	Strength     int  `json:"strength,omitempty"`
	// Remaining is the number of characters left under the remaining:<n>
	// directive. It goes negative once the limit is passed.
	Remaining    int  `json:"remaining,omitempty"`
	HasRemaining bool `json:"has_remaining,omitempty"`
	// Preview is set by the preview directive; PreviewValue mirrors the
	// field value.
	Preview      bool   `json:"preview,omitempty"`
	PreviewValue string `json:"preview_value,omitempty"`
	// Allow is the character class accepted on keystroke, if restricted.
	Allow   string `json:"allow,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Hints computes the presentational state of field from its last
// evaluated value.
func (f *Form) Hints(field string) Hint {
	d := f.schema.Directives
	value := f.values[field]

	h := Hint{
		ShowStrength: d.Strength[field],
		Preview:      d.Preview[field],
		Allow:        d.Allow[field],
		Enabled:      f.Enabled(field),
	}
	if h.ShowStrength {
		h.Strength = Strength(value)
	}
	if h.Preview {
		h.PreviewValue = value
	}
	if raw, ok := d.Remaining[field]; ok {
		if limit, err := strconv.Atoi(raw); err == nil {
			h.HasRemaining = true
			h.Remaining = limit - validator.Length(value)
		}
	}
	return h
}

var (
	letterKey    = regexp.MustCompile(`^[a-zA-Z]$`)
	nonWordKey   = regexp.MustCompile(`^\W$`)
	containAlpha = regexp.MustCompile(`[a-zA-Z]`)
)

// AllowKey reports whether a key press should reach a field restricted
// by the allow directive. Keys are named as in KeyboardEvent.key, so
// control keys like "Backspace" pass an int restriction.
func (f *Form) AllowKey(field, key string) bool {
	switch f.schema.Directives.Allow[field] {
	case "int":
		return !letterKey.MatchString(key) && !nonWordKey.MatchString(key)
	case "alpha":
		return containAlpha.MatchString(key)
	default:
		return true
	}
}

// Strength scores a value from 0 to 4: one point each for a length of at
// least eight, mixed case, a digit and a symbol.
func Strength(value string) int {
	var lower, upper, digit, symbol bool
	for _, r := range value {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsSpace(r):
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{validator.Length(value) >= 8, lower && upper, digit, symbol} {
		if ok {
			score++
		}
	}
	return score
}

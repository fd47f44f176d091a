package validator

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	intPattern      = regexp.MustCompile(`^\d+$`)
	numericPattern  = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)
	decimalPattern  = regexp.MustCompile(`^[0-9]+\.[0-9]{1,2}$`)
	alphaPattern    = regexp.MustCompile(`^[a-zA-Z]*$`)
	alphaNumPattern = regexp.MustCompile(`^[a-zA-Z0-9_]*$`)
	yearPattern     = regexp.MustCompile(`^\d{4}$`)
	emailPattern    = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")
	urlPattern      = regexp.MustCompile(`^((http|https)://(\w+:{0,1}\w*@)?(\S+)|)(:[0-9]+)?(/|/([\w#!:.?+=&%@!\-/]))?$`)
)

// dateLayouts are tried in order by the date rule.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"2-1-2006",
	"02-01-06",
	"2-1-06",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"2 January 2006",
	time.RFC3339,
}

var builtinPredicates = map[string]Predicate{
	"required":  requiredRule,
	"int":       matches(intPattern),
	"numeric":   matches(numericPattern),
	"decimal":   matches(decimalPattern),
	"alpha":     matches(alphaPattern),
	"alpha_num": matches(alphaNumPattern),
	"email":     matches(emailPattern),
	"url":       matches(urlPattern),
	"min":       minRule,
	"max":       maxRule,
	"between":   betweenRule,
	"length":    lengthRule,
	"minLength": minLengthRule,
	"maxLength": maxLengthRule,
	"in":        inRule,
	"not_in":    func(ctx Context) bool { return !inRule(ctx) },
	"equal":     equalRule,
	"not_equal": func(ctx Context) bool { return !equalRule(ctx) },
	"image":     imageRule,
	"size":      sizeRule,
	"mime":      mimeRule,
	"same":      sameRule,
	"different": differentRule,
	"enable":    enableRule,
	"clear":     func(Context) bool { return true }, // the engine resets the target
	"day":       rangeRule(1, 31),
	"month":     rangeRule(1, 12),
	"year":      matches(yearPattern),
	"date":      dateRule,
	"contain":   containRule,
	"uuid":      uuidRule,
}

func matches(re *regexp.Regexp) Predicate {
	return func(ctx Context) bool {
		return re.MatchString(ctx.Value)
	}
}

func requiredRule(ctx Context) bool {
	if ctx.Value != "" {
		return true
	}
	return ctx.File != nil && ctx.File.Name != ""
}

func minRule(ctx Context) bool {
	return ToNumber(ctx.Value) >= ToNumber(ctx.Params.First())
}

func maxRule(ctx Context) bool {
	return ToNumber(ctx.Value) <= ToNumber(ctx.Params.First())
}

// betweenRule is exclusive on both ends; the upper bound is the last
// parameter so "between:1,10" and "between:1,5,10" agree.
func betweenRule(ctx Context) bool {
	v := ToNumber(ctx.Value)
	return v > ToNumber(ctx.Params.First()) && v < ToNumber(ctx.Params.Last())
}

func lengthRule(ctx Context) bool {
	return float64(Length(ctx.Value)) == ToNumber(ctx.Params.First())
}

func minLengthRule(ctx Context) bool {
	return float64(Length(ctx.Value)) >= ToNumber(ctx.Params.First())
}

func maxLengthRule(ctx Context) bool {
	return float64(Length(ctx.Value)) <= ToNumber(ctx.Params.First())
}

// inRule is exact, case-insensitive membership in the parameter list.
func inRule(ctx Context) bool {
	return slices.ContainsFunc(ctx.Params.Values(), func(p string) bool {
		return strings.EqualFold(strings.TrimSpace(p), ctx.Value)
	})
}

func equalRule(ctx Context) bool {
	return strings.EqualFold(ctx.Value, ctx.Params.String())
}

func imageRule(ctx Context) bool {
	if ctx.File == nil {
		return false
	}
	return slices.ContainsFunc(imageTypes, func(t string) bool {
		return sameMedia(ctx.File.MIME, t)
	})
}

func sizeRule(ctx Context) bool {
	if ctx.File == nil {
		return false
	}
	return float64(ctx.File.Size) < ToNumber(ctx.Params.First())
}

func mimeRule(ctx Context) bool {
	if ctx.File == nil {
		return false
	}
	for _, ext := range ctx.Params.Values() {
		if t, ok := MIMEType(strings.TrimSpace(ext)); ok && sameMedia(ctx.File.MIME, t) {
			return true
		}
	}
	return false
}

// sameRule compares case-sensitively. A missing target is no constraint.
func sameRule(ctx Context) bool {
	other, ok := ctx.lookup(ctx.Params.First())
	if !ok {
		return true
	}
	return ctx.Value == other
}

// differentRule compares case-insensitively. A missing target is no
// constraint.
func differentRule(ctx Context) bool {
	other, ok := ctx.lookup(ctx.Params.First())
	if !ok {
		return true
	}
	return !strings.EqualFold(ctx.Value, other)
}

// enableRule keeps a gated field from passing while its source is not
// valid. A missing source is no constraint.
func enableRule(ctx Context) bool {
	source := ctx.Params.First()
	if _, ok := ctx.lookup(source); !ok {
		return true
	}
	return ctx.Form.Passed(source)
}

func rangeRule(lo, hi int) Predicate {
	return func(ctx Context) bool {
		if !intPattern.MatchString(ctx.Value) {
			return false
		}
		n, err := strconv.Atoi(ctx.Value)
		return err == nil && n >= lo && n <= hi
	}
}

func dateRule(ctx Context) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, ctx.Value); err == nil {
			return true
		}
	}
	return false
}

// containRule with "int" requires a leading number, anything else
// requires the value not to start with one.
func containRule(ctx Context) bool {
	_, err := strconv.ParseFloat(leadingNumber(ctx.Value), 64)
	if ctx.Params.First() == "int" {
		return err == nil
	}
	return err != nil
}

var leadingNumberPattern = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func leadingNumber(s string) string {
	return strings.TrimSpace(leadingNumberPattern.FindString(s))
}

// uuidRule accepts any UUID, or only the version given as parameter.
func uuidRule(ctx Context) bool {
	id, err := uuid.Parse(ctx.Value)
	if err != nil {
		return false
	}
	if v := ctx.Params.First(); v != "" {
		want, err := strconv.Atoi(v)
		return err == nil && int(id.Version()) == want
	}
	return true
}

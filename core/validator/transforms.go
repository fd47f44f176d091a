package validator

import (
	"math"

	"github.com/dmitrymomot/formrules/core/sanitizer"
)

var builtinTransforms = map[string]Transform{
	"trim":       func(ctx Context) string { return sanitizer.Trim(ctx.Value) },
	"ucfirst":    func(ctx Context) string { return sanitizer.UpperFirst(ctx.Value) },
	"lcfirst":    func(ctx Context) string { return sanitizer.LowerFirst(ctx.Value) },
	"uppercase":  func(ctx Context) string { return sanitizer.ToUpper(ctx.Value) },
	"lowercase":  func(ctx Context) string { return sanitizer.ToLower(ctx.Value) },
	"camelcase":  func(ctx Context) string { return sanitizer.ToCamelCase(ctx.Value) },
	"hashtag":    func(ctx Context) string { return "#" + ctx.Value },
	"hyphen":     func(ctx Context) string { return sanitizer.ReplaceSpaces(ctx.Value, "-") },
	"underscore": func(ctx Context) string { return sanitizer.ReplaceSpaces(ctx.Value, "_") },
	"no_spaces":  func(ctx Context) string { return sanitizer.RemoveSpaces(ctx.Value) },
	"prefix":     func(ctx Context) string { return ctx.Params.String() + ctx.Value },
	"suffix":     func(ctx Context) string { return ctx.Value + ctx.Params.String() },
	"money":      func(ctx Context) string { return sanitizer.Money(ctx.Value) },
	"replace":    replaceTransform,
	"crop":       cropTransform,
	"html":       htmlTransform,
	"round": func(ctx Context) string {
		return sanitizer.Round(ctx.Value, sanitizer.RoundMode(ctx.Params.First()))
	},
}

// replaceTransform: replace:<pattern>,<replacement>. A missing replacement
// removes the matches.
func replaceTransform(ctx Context) string {
	if !ctx.Params.IsSet() {
		return ctx.Value
	}
	repl := ""
	if ctx.Params.Len() > 1 {
		repl = ctx.Params.Values()[1]
	}
	return sanitizer.ReplacePattern(ctx.Value, ctx.Params.First(), repl)
}

func cropTransform(ctx Context) string {
	if !ctx.Params.IsSet() {
		return ctx.Value
	}
	n := ToNumber(ctx.Params.First())
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ctx.Value
	}
	return sanitizer.Crop(ctx.Value, int(n))
}

// htmlTransform decodes entities when written bare and encodes them when
// given any parameter.
func htmlTransform(ctx Context) string {
	if !ctx.Params.IsSet() {
		return sanitizer.UnescapeHTML(ctx.Value)
	}
	return sanitizer.EscapeHTML(ctx.Value)
}

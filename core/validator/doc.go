// Package validator provides the rule registry used to evaluate fields.
//
// Rules come in two kinds. Predicates inspect the value and pass or fail;
// transforms rewrite the value and always pass. Both are registered under a
// name and resolved through a [Registry] owned by a single form:
//
//	reg := validator.New() // all built-in rules
//	_ = reg.RegisterPredicate("even", func(ctx validator.Context) bool {
//		n, err := strconv.Atoi(ctx.Value)
//		return err == nil && n%2 == 0
//	})
//
//	d, ok := reg.Resolve("min")
//	passed, value := d.Apply(validator.Context{Value: "7", Params: rules.Single("5")})
//
// # Built-in predicates
//
//   - required: non-empty value or an attached file
//   - int, numeric, decimal, alpha, alpha_num: character class checks
//   - min:n, max:n: numeric comparison; non-numeric values fail
//   - between:lo,hi: exclusive numeric range
//   - length:n, minLength:n, maxLength:n: length in UTF-16 code units
//   - email, url: permissive anchored patterns
//   - in:a,b, not_in:a,b: case-insensitive membership
//   - equal:v, not_equal:v: case-insensitive equality
//   - image, size:bytes, mime:ext,...: checks on file metadata
//   - same:field, different:field: comparison with a sibling field
//   - enable:field: passes once the gating field passed
//   - clear:field: always passes; the form resets field when the values differ
//   - day, month, year, date, contain:int|alpha, uuid[:version]
//
// # Built-in transforms
//
//   - trim, ucfirst, lcfirst, uppercase, lowercase, camelcase
//   - hashtag, prefix:s, suffix:s
//   - hyphen, underscore, no_spaces
//   - replace:pattern,with, crop:n, html[:encode]
//   - money, round[:up|down]
package validator

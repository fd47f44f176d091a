// Package rules parses per-field rule strings into an ordered constraint set.
//
// A rule string is a "|"-delimited list of tokens:
//
//	required|min:5|max:10
//	size:500000|mime:jpg,png
//	required|same:password
//	enable:coupon
//
// Parsing normalizes the order: required always comes first and enable
// always comes last. Relationship rules (same, different, enable, clear)
// are recorded into a [relation.Table] keyed by the field whose change
// triggers the reaction, and
// presentational directives (strength, preview, remaining, allow) are
// kept apart in [Directives].
//
//	schema := rules.Parse(rules.Raw{
//		"password": "min:6|required",
//		"confirm":  "required|same:password",
//	})
//	schema.Rules["password"] // [required min:6]
package rules

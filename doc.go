// Package formrules validates form fields against compact rule strings.
//
// Each field gets a "|"-separated rule string such as "required|min:5|max:10".
// A Form parses the strings once, then evaluates fields on demand, stopping
// at the first failing rule and reporting an interpolated message. It also
// tracks relations between fields: a field declaring same:<target> or
// different:<target> is cleared when the target changes, a field declaring
// clear:<target> resets target when their values part, and a field
// declaring enable:<source> stays disabled until the source validates.
//
// # Basic Usage
//
//	form, err := formrules.New(rules.Raw{
//		"email":    "required|email",
//		"password": "required|minLength:8",
//		"confirm":  "required|same:password",
//	}, formrules.WithDisplayNames(map[string]string{"confirm": "password confirmation"}))
//	if err != nil {
//		return err
//	}
//
//	res := form.Submit(formrules.Values(map[string]string{
//		"email":    "user@example.com",
//		"password": "correct horse",
//		"confirm":  "correct horse",
//	}))
//	if !res.FormValid {
//		for field, o := range res.Failed() {
//			fmt.Println(field, o.Message)
//		}
//	}
//
// # Triggers
//
// The engine is trigger-agnostic. Submit evaluates every field; Check
// evaluates one field, as on blur or keyup. Triggers reports which events a
// caller should wire for the configured validateOn setting, and
// KeyupDebounce how long to wait after typing stops.
//
// # Rules
//
// Predicates fail a field; transforms rewrite its value and always pass.
// The built-ins are listed in the validator package. Custom rules apply to
// one form only and replace built-ins of the same name:
//
//	form, err := formrules.New(raw, formrules.WithCustomRules(map[string]validator.Predicate{
//		"even": func(ctx validator.Context) bool {
//			n, err := strconv.Atoi(ctx.Value)
//			return err == nil && n%2 == 0
//		},
//	}))
//
// Unknown rule names pass silently. WithStrictRules turns them into a
// construction error wrapping ErrUnknownRule.
//
// # Cascades
//
// Every Result carries a Cascade: fields to clear because a value they were
// compared against changed, and fields to enable or disable because their
// gating field passed or failed. Cleared fields lose their value, error and
// validity inside the Form as well, unless the same call also carried a new
// value for them. Change is judged on the input a field was last evaluated
// with, so a transform never makes an untouched field look changed.
package formrules

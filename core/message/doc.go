// Package message renders validation failures as human-readable text.
//
// A Formatter holds one template per rule name. Templates may contain three
// placeholders, each replaced once and literally:
//
//   - :field is the field's display name, or its raw name when none is set
//   - :parameter is the rule's first parameter
//   - :ruleValue is the same value, kept for templates written against it
//
// Resolution order for a failure is the caller's per-field override, then
// the rule template, then the default template.
//
// Basic usage:
//
//	f, err := message.New(
//		message.WithDisplayNames(map[string]string{"password_confirm": "password confirmation"}),
//		message.WithTemplates(map[string]string{"email": "Please enter an email"}),
//	)
//	if err != nil {
//		return err
//	}
//
//	msg := f.Format("pin", "length", rules.Single("6"), nil)
//	// "This value must be 6 characters long"
//
// Overrides apply to one field only:
//
//	overrides := message.Overrides{"age": {"min": "You must be at least :parameter"}}
//	msg = f.Format("age", "min", rules.Single("18"), overrides)
//	// "You must be at least 18"
package message

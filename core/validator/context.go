package validator

import "github.com/dmitrymomot/formrules/core/rules"

// File is the metadata of an uploaded file. The engine never inspects file
// contents; callers extract these fields from the upload.
type File struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
}

// Form is a read-only view of the form a field belongs to. Relational
// rules use it to look at sibling fields.
type Form interface {
	// Value returns the current trimmed value of a field and whether the
	// field exists on the form.
	Value(name string) (string, bool)
	// Passed reports whether the field's most recent evaluation succeeded.
	Passed(name string) bool
}

// Context is the input of a single rule invocation. A fresh Context is
// built for every rule, so validators never share mutable state.
type Context struct {
	Name   string
	Value  string
	Rule   string
	Params rules.Params
	File   *File
	Form   Form
}

// lookup resolves a sibling field. A nil form resolves nothing.
func (c Context) lookup(name string) (string, bool) {
	if c.Form == nil || name == "" {
		return "", false
	}
	return c.Form.Value(name)
}

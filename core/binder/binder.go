package binder

import (
	"net/http"

	"github.com/dmitrymomot/formrules/core/validator"
)

// Payload is the raw material of a validation pass: the first value of
// every submitted field and the metadata of every uploaded file.
type Payload struct {
	Values map[string]string          `json:"values"`
	Files  map[string]*validator.File `json:"files,omitempty"`
}

// Binder extracts a Payload from an HTTP request.
type Binder func(r *http.Request) (Payload, error)

func newPayload() Payload {
	return Payload{
		Values: make(map[string]string),
		Files:  make(map[string]*validator.File),
	}
}

// firstValues keeps the first value of every multi-valued field.
func firstValues(dst map[string]string, src map[string][]string) {
	for name, vs := range src {
		if name == "" || len(vs) == 0 {
			continue
		}
		dst[name] = vs[0]
	}
}

// Request picks a binder from the request: Query for GET and HEAD,
// JSON for application/json bodies and Form otherwise.
func Request() Binder {
	query, form, json := Query(), Form(), JSON()
	return func(r *http.Request) (Payload, error) {
		switch {
		case r.Method == http.MethodGet || r.Method == http.MethodHead:
			return query(r)
		case mediaType(r.Header.Get("Content-Type")) == "application/json":
			return json(r)
		default:
			return form(r)
		}
	}
}

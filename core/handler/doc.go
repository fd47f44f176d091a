// Package handler exposes form validation over HTTP.
//
// Validate builds a fresh form per request, binds the request with the
// binder package and answers with the formrules.Result as JSON: 200 when
// the form is valid, 422 when it is not, 400 or 415 when the request
// cannot be bound.
//
//	signup := func(*http.Request) (*formrules.Form, error) {
//		return formrules.New(rules.Raw{
//			"email":    "required|email",
//			"password": "required|minLength:8",
//		})
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("POST /signup/validate", handler.Validate(signup,
//		handler.WithLogger(log),
//	))
//
// Passing ?field=email validates only that field, for blur and keyup
// checks from the browser. Forms keep state between checks, so a handler
// that needs cascades across requests should return the same form for a
// session from its factory and serialize access to it.
package handler

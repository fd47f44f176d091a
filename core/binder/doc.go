// Package binder extracts form input from HTTP requests for validation.
//
// Every binder returns a Payload holding the first value of each submitted
// field and, for multipart bodies, the metadata of each uploaded file. File
// contents are never read; the validation rules only look at the name,
// size and MIME type.
//
// # Usage
//
//	b := binder.Request() // Query for GET, JSON for application/json, Form otherwise
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		p, err := b(r)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		res := form.Submit(formrules.Input(p))
//		_ = json.NewEncoder(w).Encode(res)
//	}
//
// # Security
//
// Multipart boundaries are validated before parsing, uploaded file names
// are reduced to their base name, and JSON bodies are capped at
// DefaultMaxJSONSize.
//
// # Errors
//
// Failures wrap the package sentinel errors and can be matched with errors.Is:
//
//	if errors.Is(err, binder.ErrUnsupportedMediaType) {
//		w.WriteHeader(http.StatusUnsupportedMediaType)
//	}
package binder

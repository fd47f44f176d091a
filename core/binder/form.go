package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/formrules/core/validator"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies. Only file metadata is kept; contents are never read.
//
// Example:
//
//	func signupHandler(w http.ResponseWriter, r *http.Request) {
//		p, err := binder.Form()(r)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		res := form.Submit(formrules.Input(p))
//		// ...
//	}
func Form() Binder {
	return func(r *http.Request) (Payload, error) {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return Payload{}, fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		p := newPayload()

		switch mt := mediaType(contentType); {
		case mt == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return Payload{}, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			firstValues(p.Values, r.PostForm)

		case mt == "multipart/form-data":
			_, params, err := mime.ParseMediaType(contentType)
			if err != nil {
				return Payload{}, fmt.Errorf("%w: malformed content type with boundary", ErrFailedToParseForm)
			}
			if !validateBoundary(params["boundary"]) {
				return Payload{}, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
			}

			// Larger files spill to disk.
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return Payload{}, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			if r.MultipartForm != nil {
				firstValues(p.Values, r.MultipartForm.Value)
				bindFiles(p.Files, r.MultipartForm.File)
			}

		default:
			return Payload{}, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}

		return p, nil
	}
}

func bindFiles(dst map[string]*validator.File, src map[string][]*multipart.FileHeader) {
	for name, headers := range src {
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]
		dst[name] = &validator.File{
			Name: sanitizeFilename(fh.Filename),
			Size: fh.Size,
			MIME: fileMIME(fh),
		}
	}
}

// fileMIME prefers the part's declared type and falls back to the
// extension table.
func fileMIME(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return mediaType(ct)
	}
	if t, ok := validator.MIMEType(filepath.Ext(fh.Filename)); ok {
		return t
	}
	return "application/octet-stream"
}

func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// sanitizeFilename removes path components and dangerous characters from uploaded filenames.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}

// validateBoundary rejects boundaries that break multipart parsing.
func validateBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 100 {
		return false
	}
	return !strings.ContainsAny(boundary, "\x00\r\n")
}

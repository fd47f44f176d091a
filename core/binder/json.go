package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON binds a flat JSON object. Strings are kept as sent, numbers keep
// their literal text, booleans become "true"/"false" and null becomes the
// empty string. Arrays contribute their first scalar; nested objects are
// ignored.
func JSON() Binder {
	return func(r *http.Request) (Payload, error) {
		if err := r.Context().Err(); err != nil {
			return Payload{}, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return Payload{}, fmt.Errorf("%w: missing content-type header, expected application/json", ErrMissingContentType)
		}
		if mt := mediaType(contentType); mt != "application/json" {
			return Payload{}, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		// Read one byte past the limit to detect oversized bodies.
		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return Payload{}, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return Payload{}, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.UseNumber()

		var raw map[string]any
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return Payload{}, fmt.Errorf("%w: empty request body", ErrFailedToParseJSON)
			}
			return Payload{}, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		p := newPayload()
		for name, v := range raw {
			if s, ok := scalar(v); ok {
				p.Values[name] = s
			}
		}
		return p, nil
	}
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		if t {
			return "true", true
		}
		return "false", true
	case []any:
		if len(t) == 0 {
			return "", true
		}
		return scalar(t[0])
	default:
		return "", false
	}
}

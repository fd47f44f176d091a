package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Query binds URL query parameters, for forms submitted with GET.
func Query() Binder {
	return func(r *http.Request) (Payload, error) {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return Payload{}, fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
		}
		p := newPayload()
		firstValues(p.Values, values)
		return p, nil
	}
}

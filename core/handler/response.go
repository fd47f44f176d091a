package handler

import (
	"encoding/json"
	"net/http"
)

// Response renders an HTTP response.
type Response func(w http.ResponseWriter, r *http.Request) error

// JSON creates an application/json response with the given status code.
// Encoding writes straight to the response writer.
func JSON(v any, status int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		return json.NewEncoder(w).Encode(v)
	}
}

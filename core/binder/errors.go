package binder

import "errors"

// Error variables define common binding failures that can occur during request processing.
var (
	// ErrUnsupportedMediaType indicates the Content-Type header names a media
	// type the binder doesn't handle.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON indicates the request body is not a JSON object.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseForm indicates form data parsing failed due to malformed
	// multipart boundaries or invalid URL-encoded data.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrFailedToParseQuery indicates the query string is malformed.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrMissingContentType indicates the request lacks a Content-Type header
	// when one is required for parsing.
	ErrMissingContentType = errors.New("missing content type")
)

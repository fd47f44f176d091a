package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formrules"
	"github.com/dmitrymomot/formrules/core/binder"
	"github.com/dmitrymomot/formrules/core/logger"
)

// Factory builds a fresh form for one request. Forms keep per-field state
// and are not safe for concurrent use, so handlers never share one.
type Factory func(r *http.Request) (*formrules.Form, error)

// FieldParam is the query parameter naming fields to validate on their
// own, as on blur or keyup. Without it the whole form is submitted.
const FieldParam = "field"

type config struct {
	bind   binder.Binder
	log    *slog.Logger
	status int
}

// Option configures Validate.
type Option func(*config)

// WithBinder replaces the request binder. Default is binder.Request().
func WithBinder(b binder.Binder) Option {
	return func(c *config) {
		if b != nil {
			c.bind = b
		}
	}
}

// WithLogger sets the logger for request failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithInvalidStatus sets the status code sent when the form is not valid.
// Default is 422 Unprocessable Entity.
func WithInvalidStatus(status int) Option {
	return func(c *config) {
		if status > 0 {
			c.status = status
		}
	}
}

// Validate returns an http.Handler that binds the request, validates it
// with a form from factory and writes the Result as JSON.
func Validate(factory Factory, opts ...Option) http.Handler {
	cfg := &config{
		bind:   binder.Request(),
		log:    logger.Discard(),
		status: http.StatusUnprocessableEntity,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := serve(cfg, factory, w, r); err != nil {
			cfg.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
		}
	})
}

func serve(cfg *config, factory Factory, w http.ResponseWriter, r *http.Request) error {
	form, err := factory(r)
	if err != nil {
		cfg.log.ErrorContext(r.Context(), "failed to build form", logger.Error(err))
		return JSON(errorBody{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)(w, r)
	}

	payload, err := cfg.bind(r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, binder.ErrUnsupportedMediaType) {
			status = http.StatusUnsupportedMediaType
		}
		return JSON(errorBody{Error: err.Error()}, status)(w, r)
	}

	fields := r.URL.Query()[FieldParam]
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		// The query binder sees the selector as a form value.
		delete(payload.Values, FieldParam)
	}

	in := formrules.Input(payload)
	var res formrules.Result
	if len(fields) > 0 {
		res = form.Validate(in, false, fields...)
	} else {
		res = form.Submit(in)
	}

	status := http.StatusOK
	if !res.FormValid {
		status = cfg.status
	}
	return JSON(res, status)(w, r)
}

type errorBody struct {
	Error string `json:"error"`
}

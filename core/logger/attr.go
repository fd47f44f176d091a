package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers return the empty Attr for nil or empty input, so calls
// like log.Debug("msg", logger.Error(err)) need no nil checks.

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Form Validation
// ============================================================================

// Field creates an attribute for a form field name.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Fields creates an attribute listing several field names.
// Returns empty Attr for an empty list.
func Fields(names []string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", names)
}

// Rule creates an attribute for a rule name.
func Rule(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("rule", name)
}

// Trigger creates an attribute for the event that started a validation pass.
func Trigger(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("trigger", name)
}

// Valid creates an attribute for a validation outcome.
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// ============================================================================
// Performance and Timing
// ============================================================================

// Elapsed calculates the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Path creates an attribute for a file path.
func Path(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("path", path)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

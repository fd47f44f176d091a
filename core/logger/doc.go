// Package logger provides a small slog factory and nil-safe attribute
// helpers used across the validation engine and the formcheck CLI.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("formcheck"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Debug("rule failed",
//		logger.Component("engine"),
//		logger.Field("email"),
//		logger.Rule("email"),
//	)
//
// Production output is JSON at info level:
//
//	log := logger.New(logger.WithProduction("formcheck"))
//
// Levels can come from configuration strings:
//
//	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
//
// Library code that receives no logger should use Discard.
//
// # Attribute Helpers
//
// Helpers return the empty slog.Attr when given nil or empty input, which
// slog handlers skip. This keeps call sites free of conditionals:
//
//	log.Debug("cascade",
//		logger.Field(field),
//		logger.Fields(cleared), // omitted when nothing was cleared
//		logger.Error(err),      // omitted when err is nil
//	)
package logger

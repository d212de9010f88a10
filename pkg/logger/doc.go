// Package logger builds *slog.Logger values for the token service and its
// callers.
//
// New takes functional options (format, level, output, static attributes,
// environment presets) and wraps the handler in LogHandlerDecorator, which
// appends attributes pulled from the context on every record. The jwt
// package ships an extractor that logs the subject of the token verified by
// its middleware.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "billing-api"),
//	    logger.WithContextExtractors(jwt.SubjectExtractor),
//	)
//	svc := jwt.New(jwt.WithLogger(log))
//
// Attribute helpers (Subject, TokenID, Reason, Error, ...) keep key names
// consistent. Helpers return an empty slog.Attr for empty input, which slog
// drops, so callers can pass them unconditionally:
//
//	log.Debug("token validation failed", logger.Reason(kind), logger.Error(err))
package logger

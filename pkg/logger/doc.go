// Package logger builds log/slog loggers through functional options and
// provides attribute helpers that keep key names uniform across the detector.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with ContextHandler, which runs registered ContextExtractor
// callbacks on every record. This is how request-scoped values such as the
// detection stored by the user agent middleware end up on log lines.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "edge-api"),
//	    logger.WithContextExtractors(useragent.LogExtractor()),
//	)
//	log.InfoContext(r.Context(), "request served", logger.UserAgent(r.UserAgent()))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger

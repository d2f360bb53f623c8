// Package logger builds the *slog.Logger instances used across xssguard.
//
// New takes functional options selecting the output format (json or text),
// the minimum level, static attributes and ContextExtractor callbacks. The
// resulting handler is wrapped in a decorator that runs the extractors on
// every record, which is how request-scoped values such as the chi request id
// end up in log lines emitted deep inside the render and message pipelines.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextExtractors(logger.RequestIDExtractor(middleware.GetReqID)),
//	)
//	log.InfoContext(ctx, "page rewritten", logger.Surface("primary"), logger.Rewrites(3))
//
// Attribute helpers in attr.go keep key names consistent. Helpers that take
// an optional value return an empty slog.Attr, which slog drops, when the
// value is missing.
//
// Discard returns a logger that writes nothing; packages use it as their
// default when no logger is configured.
package logger

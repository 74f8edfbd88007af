// Package logger builds slog loggers with functional options and provides
// attribute helpers for the card domain.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs ContextExtractor callbacks on every
// record and redacts card numbers. That is how request ids travel from HTTP middleware into logs.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "cardcheck"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "card validated", logger.CardResult(res))
//
// # Card data
//
// CardNumber and CardResult always pass numbers through card.Mask, keeping
// only the first six and last four digits. LogHandlerDecorator also masks any
// Luhn-valid card number it finds in the message, string attributes or error
// values, including grouped forms like "4532 0151 1283 0366".
//
// # Error Handling
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger

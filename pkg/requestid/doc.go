// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware accepts a client supplied X-Request-ID made of letters, digits,
// dashes and underscores (at most 128 characters) and otherwise generates a
// UUIDv4. The id is stored in the request context, returned in the response
// header and, through LoggerExtractor, added to every log record:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid

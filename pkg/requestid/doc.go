// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware keeps a client supplied X-Request-ID when it is at most 128
// characters of letters, digits, '-' and '_'; otherwise it generates a
// UUIDv7. The ID is echoed in the response and stored in the request
// context, where FromContext reads it and LogExtractor exposes it to the
// logger.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid

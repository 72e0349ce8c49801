// Package requestid tags every request with an X-Request-ID.
//
// Middleware keeps a well-formed id sent by the client (letters, digits,
// '-' and '_', at most 128 bytes) and generates a UUID otherwise. The id is
// written to the response header and stored in the request context, where
// FromContext reads it and LogExtractor adds it to log records:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid

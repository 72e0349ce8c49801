// Package clientip resolves the client address of HTTP requests.
//
// Forwarding headers are trusted only when configured:
//
//	res := clientip.Resolver{Headers: []string{"CF-Connecting-IP", "X-Forwarded-For"}}
//	r.Use(res.Middleware)
//
// The address is stored in the request context and added to log records by
// LogExtractor:
//
//	log := logger.New(logger.WithContextExtractors(clientip.LogExtractor()))
package clientip

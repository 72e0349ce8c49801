// Package handler provides type-safe HTTP request dispatch built from an
// explicit, ordered list of extractors.
//
// A handler is a plain function that receives a request context and a typed
// input value R. The input is assembled by extractors registered with Wrap:
// each extractor reads what it needs from the request (a cookie, a header, a
// route parameter) and stores the result in R, or returns a Response that is
// sent instead of calling the handler. State and configuration an extractor
// needs, such as a session store or an account set, are captured by the
// closure that builds it:
//
//	type adminRequest struct {
//		User basicauth.User
//	}
//
//	func admin(ctx handler.Context, req adminRequest) handler.Response {
//		return handler.Text(http.StatusOK, "hello "+req.User.Name())
//	}
//
//	r := chi.NewRouter()
//	r.Get("/admin", handler.Wrap(admin,
//		handler.WithExtractors(
//			basicauth.Require[handler.Context](accounts.SingleUser("admin"),
//				func(req *adminRequest, u basicauth.User) { req.User = u }),
//		),
//	))
//
// # Responses
//
// Every handler returns a Response which renders itself:
//
//	handler.Text(http.StatusOK, "ok")
//	handler.JSON(data, handler.WithJSONStatus(http.StatusCreated))
//	handler.EmptyWithStatus(http.StatusUnauthorized)
//	handler.Error(handler.ErrForbidden)
//	handler.WithHeader(resp, "Cache-Control", "no-store")
//
// # Decorators
//
// Decorators wrap a HandlerFunc for cross-cutting concerns and are applied
// with WithDecorators, first decorator outermost.
//
// # Errors
//
// Rendering errors and nil responses go to the ErrorHandler. The default
// writes the HTTPError status or a generic 500.
package handler

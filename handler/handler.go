package handler

import (
	"errors"
	"net/http"
)

// HandlerFunc provides type-safe HTTP request handling with custom context support.
// C must implement the Context interface, R is the value the registered
// extractors fill in before the handler runs.
//
// Example:
//
//	type counterRequest struct {
//		Session *session.Session[Visits]
//	}
//
//	h := handler.HandlerFunc[handler.Context, counterRequest](
//		func(ctx handler.Context, req counterRequest) handler.Response {
//			req.Session.Data().Count++
//			return req.Session.Respond(handler.Text(http.StatusOK, "ok"))
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
// Errors are handled by the framework (returns 500).
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Extractor pulls one piece of the handler input out of the request and
// stores it in req. Shared state and configuration are captured by the
// closure that builds the extractor.
//
// A non-nil Response stops dispatch: it is rendered instead of calling the
// handler and no further extractors run.
type Extractor[C Context, R any] func(ctx C, req *R) Response

// ErrorHandler handles errors from rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, with the first decorator in the list
// being the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	extractors     []Extractor[C, R]
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithExtractors registers extractors that will be applied in order.
// Calling it more than once appends to the list.
//
// Example:
//
//	r.Get("/admin", handler.Wrap(adminPage,
//		handler.WithExtractors(
//			basicauth.Require[handler.Context](admins, func(req *adminRequest, u basicauth.User) { req.User = u }),
//			session.Extract[handler.Context](store, nil, func(req *adminRequest, s *session.Session[Visits]) { req.Session = s }),
//		),
//	))
func WithExtractors[C Context, R any](extractors ...Extractor[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
// Decorators are applied in order, with the first decorator being the outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler provides standard HTTP error responses.
// It checks if the error is an HTTPError and uses its status code,
// otherwise defaults to 500 Internal Server Error.
func defaultErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// For every request Wrap builds the context, runs the registered extractors
// in registration order, calls the decorated handler and renders the
// response it returns.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := any(NewContext(w, r)).(C); ok {
				return c
			}
			panic("handler: cannot use default context factory with custom context type - provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		for _, extract := range cfg.extractors {
			if resp := extract(ctx, &req); resp != nil {
				render(ctx, cfg.errorHandler, resp)
				return
			}
		}

		render(ctx, cfg.errorHandler, finalHandler(ctx, req))
	}
}

func render[C Context](ctx C, onError ErrorHandler[C], resp Response) {
	if resp == nil {
		onError(ctx, ErrNilResponse)
		return
	}
	if err := resp.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		onError(ctx, err)
	}
}

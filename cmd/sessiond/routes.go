package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sessionkit/handler"
	"github.com/dmitrymomot/sessionkit/pkg/basicauth"
	"github.com/dmitrymomot/sessionkit/pkg/clientip"
	"github.com/dmitrymomot/sessionkit/pkg/httpserver"
	"github.com/dmitrymomot/sessionkit/pkg/metrics"
	"github.com/dmitrymomot/sessionkit/pkg/requestid"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Visits is the per-session state.
type Visits struct {
	Count int
}

type app struct {
	store     *session.Store[Visits]
	accounts  basicauth.AccountSet
	adminUser string
	clientIP  clientip.Resolver
	metrics   *metrics.Collector
	log       *slog.Logger
	checks    []func(context.Context) error
}

func newRouter(a app) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, a.clientIP.Middleware)
	if a.metrics != nil {
		r.Use(a.metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	}

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log, a.checks...))

	r.Get("/", handler.Wrap(a.counter,
		handler.WithExtractors(
			session.Extract[handler.Context](a.store, nil,
				func(req *counterRequest, s *session.Session[Visits]) { req.Session = s }),
		),
	))

	r.Get("/self", handler.Wrap(a.self,
		handler.WithExtractors(
			session.ExtractToken[handler.Context](
				func(req *selfRequest, t session.Token, ok bool) { req.Token, req.OK = t, ok }),
		),
	))

	r.Post("/logout", handler.Wrap(a.logout,
		handler.WithExtractors(
			session.ExtractToken[handler.Context](
				func(req *selfRequest, t session.Token, ok bool) { req.Token, req.OK = t, ok }),
		),
	))

	r.Get("/whoami", handler.Wrap(a.whoami,
		handler.WithExtractors(
			basicauth.Optional[handler.Context](a.accounts,
				func(req *whoamiRequest, u basicauth.User, err error) { req.User, req.Err = u, err }),
		),
	))

	r.Get("/admin", handler.Wrap(a.admin,
		handler.WithExtractors(
			basicauth.Require[handler.Context](a.accounts.SingleUser(a.adminUser),
				func(req *adminRequest, u basicauth.User) { req.User = u }),
		),
	))

	return r
}

type counterRequest struct {
	Session *session.Session[Visits]
}

func (a app) counter(ctx handler.Context, req counterRequest) handler.Response {
	sess := req.Session
	sess.Data().Count++
	if err := a.store.Commit(sess); err != nil {
		if !errors.Is(err, session.ErrUnauthorized) {
			return handler.Error(err)
		}
		// A concurrent logout invalidated the session after it was loaded.
		// Start the client over with a fresh one.
		a.log.DebugContext(ctx, "session invalidated during request, starting a new one")
		fresh, err := a.store.GetOrCreate(ctx, nil, nil)
		if err != nil {
			return handler.Error(handler.ErrInternal)
		}
		fresh.Data().Count++
		if err := a.store.Commit(fresh); err != nil {
			return handler.Error(handler.ErrInternal)
		}
		sess = fresh
	}
	return sess.Respond(handler.Text(http.StatusOK,
		fmt.Sprintf("visits: %d", sess.Data().Count)))
}

type selfRequest struct {
	Token session.Token
	OK    bool
}

func (a app) self(_ handler.Context, req selfRequest) handler.Response {
	if !req.OK {
		return handler.Text(http.StatusOK, "no session")
	}
	if _, err := a.store.Get(req.Token); err != nil {
		return handler.Text(http.StatusOK, "stale session "+req.Token.String())
	}
	return handler.Text(http.StatusOK, "session "+req.Token.String())
}

func (a app) logout(ctx handler.Context, req selfRequest) handler.Response {
	if !req.OK {
		return handler.Empty()
	}
	if _, ok := a.store.Invalidate(req.Token); ok {
		a.log.DebugContext(ctx, "session invalidated")
	}
	return handler.ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		a.store.ClearCookie(w)
		return handler.Empty().Render(w, r)
	})
}

type whoamiRequest struct {
	User basicauth.User
	Err  error
}

func (a app) whoami(_ handler.Context, req whoamiRequest) handler.Response {
	if req.Err != nil {
		return handler.Text(http.StatusOK, "anonymous")
	}
	return handler.Text(http.StatusOK, req.User.Name())
}

type adminRequest struct {
	User basicauth.User
}

func (a app) admin(_ handler.Context, req adminRequest) handler.Response {
	return handler.WithHeader(handler.Text(http.StatusOK, "hello "+req.User.Name()), "Cache-Control", "no-store")
}

package basicauth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sessionkit/handler"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Verifier authenticates requests and produces the challenge sent when
// authentication fails. AccountSet and Protected implement it.
type Verifier interface {
	Verify(r *http.Request) (User, bool)
	Authenticate() handler.Response
}

// table is the frozen credential map shared by copies of an AccountSet.
type table struct {
	entries  map[string]Hashed
	logger   *slog.Logger
	recorder Recorder
}

// AccountSet is an immutable set of accounts bound to a realm. Copies share
// the same table and are safe for concurrent use.
type AccountSet struct {
	table *table
	realm Realm
}

var (
	_ Verifier = AccountSet{}
	_ Verifier = Protected{}
)

// Realm returns the realm the set challenges with.
func (a AccountSet) Realm() Realm { return a.realm }

// Len returns the number of accounts.
func (a AccountSet) Len() int {
	if a.table == nil {
		return 0
	}
	return len(a.table.entries)
}

// Check verifies auth against the set and returns the authenticated user.
func (a AccountSet) Check(auth Authorization) (User, bool) {
	return a.verify(context.Background(), auth, nil)
}

// Verify parses the request's Authorization header and checks it.
func (a AccountSet) Verify(r *http.Request) (User, bool) {
	return a.verify(r.Context(), ParseAuthorization(r.Header), nil)
}

// verify checks auth and, when admit is set, applies it to the verified
// user. The attempt is recorded once, with the final outcome, and only when
// a Basic header was presented.
func (a AccountSet) verify(ctx context.Context, auth Authorization, admit func(User) bool) (User, bool) {
	user, password, ok := auth.Basic()
	if !ok || a.table == nil {
		return User{}, false
	}

	ok = check(a.table.entries, user, password) == nil
	if ok && admit != nil {
		ok = admit(User{name: user})
	}
	a.table.recorder.AuthAttempt(ok)

	if !ok {
		// No username: clients sometimes type the password into it.
		// The client IP is added by the context extractors.
		a.table.logger.DebugContext(ctx, "basic auth rejected", logger.Realm(a.realm.Name()))
		return User{}, false
	}
	return User{name: user}, true
}

// Authenticate returns a 401 response carrying the realm's
// WWW-Authenticate challenge.
func (a AccountSet) Authenticate() handler.Response {
	return handler.WithHeader(
		handler.EmptyWithStatus(http.StatusUnauthorized),
		"WWW-Authenticate", a.realm.WWWAuthenticate(),
	)
}

// SingleUser restricts the set to one account.
func (a AccountSet) SingleUser(name string) Protected {
	return Protected{set: a, user: name}
}

// Protected accepts only one designated account of an AccountSet.
type Protected struct {
	set  AccountSet
	user string
}

// User returns the designated username.
func (p Protected) User() string { return p.user }

// Check succeeds only when auth verifies and names the designated user.
func (p Protected) Check(auth Authorization) (User, bool) {
	return p.set.verify(context.Background(), auth, p.admit)
}

func (p Protected) Verify(r *http.Request) (User, bool) {
	return p.set.verify(r.Context(), ParseAuthorization(r.Header), p.admit)
}

func (p Protected) admit(u User) bool {
	return u.name == p.user
}

// Authenticate returns the same challenge as the underlying set.
func (p Protected) Authenticate() handler.Response {
	return p.set.Authenticate()
}

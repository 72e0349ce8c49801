// Package basicauth implements HTTP Basic authentication against an in-memory
// table of bcrypt password digests.
//
// Accounts are collected in a Credentials builder and frozen into an
// AccountSet bound to a Realm. The set is immutable and cheap to copy, so it
// can be shared by every handler without locking:
//
//	creds := basicauth.NewCredentials()
//	creds.Insert("admin", "s3cret")
//	accounts := creds.Freeze(basicauth.MustRealm("Admin area"))
//
//	user, ok := accounts.Verify(r)
//	if !ok {
//		_ = accounts.Authenticate().Render(w, r) // 401 + WWW-Authenticate
//		return
//	}
//
// Usernames are insert-once: the first entry for a name wins. Credentials
// can also be read from a YAML users file or a Redis hash.
//
// SingleUser narrows a set to one account. Require and Optional expose a
// Verifier to the handler package; Middleware does the same for net/http.
//
// Malformed Authorization headers are treated exactly like missing ones.
// Passwords and digests are never logged.
package basicauth

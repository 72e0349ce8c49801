package session

import (
	"net/http"
)

// Middleware loads or creates the session for every request and stores it in
// the request context. The cookie for a new session is attached before next
// runs, since headers cannot be added once next starts writing.
//
// Payload changes are not saved automatically; handlers call store.Commit.
func Middleware[T any](store *Store[T], defaults func() T) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := store.Load(r, defaults)
			if err != nil {
				http.Error(w, "Session error", http.StatusInternalServerError)
				return
			}

			sess.Attach(w)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

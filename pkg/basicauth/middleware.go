package basicauth

import (
	"net/http"
)

// Middleware rejects requests v does not verify with its 401 challenge and
// stores the verified user in the context of the rest.
func Middleware(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := v.Verify(r)
			if !ok {
				if err := v.Authenticate().Render(w, r); err != nil {
					http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				}
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

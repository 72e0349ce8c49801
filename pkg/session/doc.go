// Package session implements an in-memory, token-keyed session store.
//
// A Store[T] maps opaque 128-bit tokens to payloads of type T. Tokens are
// drawn from a random source owned by the store and are unique among live
// sessions: the draw, the collision check and the insert happen under one
// exclusive lock. Sessions live until they are invalidated; there is no
// expiry and nothing is persisted.
//
// The token travels in the session_id cookie as padded URL-safe base64. A
// missing or malformed cookie is treated as "no session" and never reported
// to the client.
//
// # Usage
//
//	type Visits struct{ Count int }
//
//	store := session.NewStore[Visits]()
//
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		sess, err := store.Load(r, nil)
//		if err != nil {
//			http.Error(w, "session error", http.StatusInternalServerError)
//			return
//		}
//		sess.Data().Count++
//		if err := store.Commit(sess); err != nil {
//			// Invalidated by a concurrent request.
//			http.Error(w, "session expired", http.StatusConflict)
//			return
//		}
//
//		sess.Attach(w)
//		fmt.Fprintf(w, "visits: %d", sess.Data().Count)
//	})
//
// A Session is a snapshot. Mutations through Data are private to the request
// until Store.Commit writes them back. Payloads with reference fields should
// implement Cloner so snapshots stay detached from the stored value.
//
// With the handler package, Extract provides the session as a typed input:
//
//	r.Get("/", handler.Wrap(counter,
//		handler.WithExtractors(
//			session.Extract[handler.Context](store, nil,
//				func(req *counterRequest, s *session.Session[Visits]) { req.Session = s }),
//		),
//	))
//
// Plain net/http code can use Middleware and FromContext instead.
package session

package session_test

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

type visits struct {
	Count int
}

type profile struct {
	Tags map[string]string
}

func (p profile) Clone() profile {
	return profile{Tags: maps.Clone(p.Tags)}
}

// sequence returns a reader that yields the given tokens in order.
func sequence(tokens ...session.Token) *bytes.Reader {
	var buf bytes.Buffer
	for _, t := range tokens {
		buf.Write(t[:])
	}
	return bytes.NewReader(buf.Bytes())
}

type countingRecorder struct {
	created     atomic.Int64
	invalidated atomic.Int64
	collisions  atomic.Int64
}

func (r *countingRecorder) SessionCreated()     { r.created.Add(1) }
func (r *countingRecorder) SessionInvalidated() { r.invalidated.Add(1) }
func (r *countingRecorder) TokenCollision()     { r.collisions.Add(1) }

func TestStore_Create(t *testing.T) {
	t.Parallel()

	t.Run("get after create", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()

		tok, err := store.Create(visits{Count: 3})
		require.NoError(t, err)

		got, err := store.Get(tok)
		require.NoError(t, err)
		assert.Equal(t, visits{Count: 3}, got)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("retries on collision", func(t *testing.T) {
		t.Parallel()
		a := session.Token{1}
		b := session.Token{2}
		rec := &countingRecorder{}
		store := session.NewStore[visits](session.WithRand(sequence(a, a, a, b)), session.WithRecorder(rec))

		first, err := store.Create(visits{Count: 1})
		require.NoError(t, err)
		assert.Equal(t, a, first)

		second, err := store.Create(visits{Count: 2})
		require.NoError(t, err)
		assert.Equal(t, b, second)

		assert.Equal(t, int64(2), rec.collisions.Load())
		assert.Equal(t, int64(2), rec.created.Load())

		got, err := store.Get(a)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Count, "collision must not overwrite the existing entry")
	})

	t.Run("random source failure", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits](session.WithRand(bytes.NewReader([]byte{1, 2, 3})))

		_, err := store.Create(visits{})
		assert.ErrorIs(t, err, session.ErrTokenGeneration)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("concurrent creates yield unique tokens", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()

		const workers, perWorker = 16, 200
		var (
			mu   sync.Mutex
			seen = make(map[session.Token]struct{}, workers*perWorker)
			wg   sync.WaitGroup
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perWorker {
					tok, err := store.Create(visits{})
					if !assert.NoError(t, err) {
						return
					}
					mu.Lock()
					seen[tok] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, workers*perWorker)
		assert.Equal(t, workers*perWorker, store.Len())
	})

	t.Run("concurrent creates with a colliding source", func(t *testing.T) {
		t.Parallel()
		// Every token is drawn twice in a row.
		var tokens []session.Token
		for i := range 64 {
			tok := session.Token{byte(i), byte(i >> 8)}
			tokens = append(tokens, tok, tok)
		}
		store := session.NewStore[visits](session.WithRand(sequence(tokens...)))

		var (
			wg     sync.WaitGroup
			issued sync.Map
			dupes  atomic.Int64
		)
		for range 64 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tok, err := store.Create(visits{})
				if !assert.NoError(t, err) {
					return
				}
				if _, loaded := issued.LoadOrStore(tok, struct{}{}); loaded {
					dupes.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Zero(t, dupes.Load())
		assert.Equal(t, 64, store.Len())
	})
}

func TestStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()

		_, err := store.Get(session.Token{42})
		assert.ErrorIs(t, err, session.ErrUnauthorized)
	})

	t.Run("snapshots are detached", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[profile]()
		input := profile{Tags: map[string]string{"theme": "dark"}}

		tok, err := store.Create(input)
		require.NoError(t, err)
		input.Tags["theme"] = "light"

		got, err := store.Get(tok)
		require.NoError(t, err)
		got.Tags["theme"] = "blue"

		again, err := store.Get(tok)
		require.NoError(t, err)
		assert.Equal(t, "dark", again.Tags["theme"])
	})
}

func TestStore_Invalidate(t *testing.T) {
	t.Parallel()

	rec := &countingRecorder{}
	store := session.NewStore[visits](session.WithRecorder(rec))
	tok, err := store.Create(visits{Count: 7})
	require.NoError(t, err)

	prev, ok := store.Invalidate(tok)
	require.True(t, ok)
	assert.Equal(t, 7, prev.Count)

	_, err = store.Get(tok)
	assert.ErrorIs(t, err, session.ErrUnauthorized)

	_, ok = store.Invalidate(tok)
	assert.False(t, ok)
	assert.Equal(t, int64(1), rec.invalidated.Load())
	assert.Zero(t, store.Len())
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	t.Run("live session", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()
		tok, err := store.Create(visits{})
		require.NoError(t, err)

		require.NoError(t, store.Update(tok, visits{Count: 5}))

		got, err := store.Get(tok)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Count)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()
		err := store.Update(session.Token{1}, visits{})
		assert.ErrorIs(t, err, session.ErrUnauthorized)
		assert.Zero(t, store.Len())
	})

	t.Run("commit after invalidate", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()
		sess, err := store.GetOrCreate(context.Background(), nil, nil)
		require.NoError(t, err)
		store.Invalidate(sess.Token())

		assert.ErrorIs(t, store.Commit(sess), session.ErrUnauthorized)
		assert.ErrorIs(t, store.Commit(nil), session.ErrUnauthorized)
	})
}

func TestStore_GetOrCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no token creates with defaults", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()

		sess, err := store.GetOrCreate(ctx, func(context.Context) (session.Token, bool) {
			return session.Token{}, false
		}, func() visits { return visits{Count: 10} })
		require.NoError(t, err)

		assert.True(t, sess.IsNew())
		assert.Equal(t, 10, sess.Data().Count)

		stored, err := store.Get(sess.Token())
		require.NoError(t, err)
		assert.Equal(t, 10, stored.Count)
	})

	t.Run("live token returns existing session", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()
		tok, err := store.Create(visits{Count: 2})
		require.NoError(t, err)

		sess, err := store.GetOrCreate(ctx, func(context.Context) (session.Token, bool) {
			return tok, true
		}, nil)
		require.NoError(t, err)

		assert.False(t, sess.IsNew())
		assert.Equal(t, tok, sess.Token())
		assert.Equal(t, 2, sess.Data().Count)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("stale token creates a new session", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()
		stale := session.Token{7, 7, 7}

		sess, err := store.GetOrCreate(ctx, func(context.Context) (session.Token, bool) {
			return stale, true
		}, nil)
		require.NoError(t, err)

		assert.True(t, sess.IsNew())
		assert.NotEqual(t, stale, sess.Token())
		assert.Zero(t, sess.Data().Count)
	})

	t.Run("data changes need commit", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()
		sess, err := store.GetOrCreate(ctx, nil, nil)
		require.NoError(t, err)

		sess.Data().Count = 4
		stored, err := store.Get(sess.Token())
		require.NoError(t, err)
		assert.Zero(t, stored.Count)

		require.NoError(t, store.Commit(sess))
		stored, err = store.Get(sess.Token())
		require.NoError(t, err)
		assert.Equal(t, 4, stored.Count)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.GetOrCreate(cctx, nil, nil)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Zero(t, store.Len())
	})

	t.Run("load reads the session cookie", func(t *testing.T) {
		t.Parallel()
		store := session.NewStore[visits]()
		tok, err := store.Create(visits{Count: 9})
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: session.EncodeToken(tok)})

		sess, err := store.Load(r, nil)
		require.NoError(t, err)
		assert.False(t, sess.IsNew())
		assert.Equal(t, 9, sess.Data().Count)
	})
}

package basicauth

import (
	"iter"
	"maps"
)

// Credentials maps usernames to password digests. It is a builder: fill it,
// then Freeze it into an AccountSet. Credentials is not safe for concurrent
// use.
type Credentials struct {
	entries map[string]Hashed
	opts    options
}

// NewCredentials returns an empty credential table.
func NewCredentials(opts ...Option) *Credentials {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Credentials{
		entries: make(map[string]Hashed),
		opts:    o,
	}
}

// Collect builds a table from username/plaintext pairs. Later duplicates and
// passwords that fail to hash are skipped.
func Collect(pairs iter.Seq2[string, string], opts ...Option) *Credentials {
	c := NewCredentials(opts...)
	for user, password := range pairs {
		c.Insert(user, password)
	}
	return c
}

// Insert hashes password and adds it for user. It returns false, leaving the
// table unchanged, when user already exists or hashing fails.
func (c *Credentials) Insert(user, password string) bool {
	if _, exists := c.entries[user]; exists {
		return false
	}
	hashed, err := Hash(password, c.opts.cost)
	if err != nil {
		return false
	}
	return c.Prehashed(user, hashed)
}

// Prehashed adds an existing digest for user. The first entry for a username
// wins; later ones return false.
func (c *Credentials) Prehashed(user string, hashed Hashed) bool {
	if _, exists := c.entries[user]; exists {
		return false
	}
	c.entries[user] = hashed
	return true
}

// Check verifies password for user.
func (c *Credentials) Check(user, password string) error {
	return check(c.entries, user, password)
}

// Len returns the number of accounts.
func (c *Credentials) Len() int {
	return len(c.entries)
}

// Freeze snapshots the table into an immutable AccountSet. Later changes to
// c are not visible through the returned set.
func (c *Credentials) Freeze(realm Realm) AccountSet {
	return AccountSet{
		table: &table{
			entries:  maps.Clone(c.entries),
			logger:   c.opts.logger,
			recorder: c.opts.recorder,
		},
		realm: realm,
	}
}

// TODO: compare against a dummy digest for unknown users so response time
// does not reveal which usernames exist.
func check(entries map[string]Hashed, user, password string) error {
	hashed, ok := entries[user]
	if !ok || !hashed.Verify(password) {
		return ErrUnauthorized
	}
	return nil
}

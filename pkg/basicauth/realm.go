package basicauth

import (
	"golang.org/x/net/http/httpguts"
)

// Realm names the protection space a set of credentials applies to and holds
// the pre-formatted WWW-Authenticate challenge for it.
type Realm struct {
	name      string
	challenge string
}

// NewRealm builds a realm. The name is placed between double quotes as is,
// so it must already be escaped as an RFC 7230 quoted-string. It fails with
// ErrUnhandledCharacter when the resulting challenge is not a legal header
// value.
func NewRealm(name string) (Realm, error) {
	challenge := `Basic realm="` + name + `"`
	if !httpguts.ValidHeaderFieldValue(challenge) {
		return Realm{}, ErrUnhandledCharacter
	}
	return Realm{name: name, challenge: challenge}, nil
}

// MustRealm is like NewRealm but panics on error. Intended for literals.
func MustRealm(name string) Realm {
	r, err := NewRealm(name)
	if err != nil {
		panic("basicauth: invalid realm " + name)
	}
	return r
}

// Name returns the realm name.
func (r Realm) Name() string { return r.name }

// WWWAuthenticate returns the value for a WWW-Authenticate header.
func (r Realm) WWWAuthenticate() string {
	if r.challenge == "" {
		return `Basic realm=""`
	}
	return r.challenge
}

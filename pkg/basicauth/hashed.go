package basicauth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

const redacted = "[REDACTED]"

// Hashed is a bcrypt password digest. It is what gets stored and loaded;
// plaintext passwords are never kept.
type Hashed struct {
	digest string
}

// NewHashed wraps a digest produced elsewhere, for example one read from disk.
// The digest is not validated; a malformed one simply never matches.
func NewHashed(digest string) Hashed {
	return Hashed{digest: digest}
}

// Hash hashes password with bcrypt at the given cost.
func Hash(password string, cost int) (Hashed, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Hashed{}, err
	}
	return Hashed{digest: string(digest)}, nil
}

// Digest returns the encoded bcrypt digest for persistence.
func (h Hashed) Digest() string {
	return h.digest
}

// Verify reports whether password matches the digest.
func (h Hashed) Verify(password string) bool {
	if h.digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.digest), []byte(password)) == nil
}

// Valid reports whether the digest is a well-formed bcrypt hash.
func (h Hashed) Valid() bool {
	_, err := bcrypt.Cost([]byte(h.digest))
	return err == nil
}

func (h Hashed) String() string { return redacted }

func (h Hashed) LogValue() slog.Value { return slog.StringValue(redacted) }

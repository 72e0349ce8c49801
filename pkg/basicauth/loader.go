package basicauth

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// usersFile is the on-disk account list:
//
//	users:
//	  - username: admin
//	    password_hash: $2a$10$...
//	  - username: guest
//	    password: guest
//
// Each entry carries exactly one of password_hash or password.
type usersFile struct {
	Users []userEntry `yaml:"users"`
}

type userEntry struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	Password     string `yaml:"password"`
}

// LoadYAML adds the accounts listed in r. Nothing is added unless the whole
// document is valid; a username listed twice makes it invalid. Usernames
// already present in c keep their existing entry.
func (c *Credentials) LoadYAML(r io.Reader) error {
	var doc usersFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(ErrInvalidUsersFile, err)
	}

	staged := &Credentials{entries: make(map[string]Hashed), opts: c.opts}
	for i, e := range doc.Users {
		if err := staged.addEntry(e); err != nil {
			return errors.Join(ErrInvalidUsersFile, fmt.Errorf("entry %d: %w", i, err))
		}
	}

	added := 0
	for user, hashed := range staged.entries {
		if !c.Prehashed(user, hashed) {
			c.opts.logger.Warn("users file entry shadowed by earlier source", logger.Username(user))
			continue
		}
		added++
	}
	c.opts.logger.Info("loaded users file", logger.Count(added))
	return nil
}

// LoadYAMLFile is LoadYAML for a file path.
func (c *Credentials) LoadYAMLFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Join(ErrInvalidUsersFile, err)
	}
	defer f.Close()
	return c.LoadYAML(f)
}

func (c *Credentials) addEntry(e userEntry) error {
	switch {
	case e.Username == "":
		return errors.New("missing username")
	case e.PasswordHash != "" && e.Password != "":
		return fmt.Errorf("user %q: password and password_hash are exclusive", e.Username)
	case e.PasswordHash != "":
		hashed := NewHashed(e.PasswordHash)
		if !hashed.Valid() {
			return fmt.Errorf("user %q: malformed password_hash", e.Username)
		}
		if !c.Prehashed(e.Username, hashed) {
			return fmt.Errorf("duplicate user %q", e.Username)
		}
	case e.Password != "":
		if _, exists := c.entries[e.Username]; exists {
			return fmt.Errorf("duplicate user %q", e.Username)
		}
		if !c.Insert(e.Username, e.Password) {
			return fmt.Errorf("user %q: password cannot be hashed", e.Username)
		}
	default:
		return fmt.Errorf("user %q: no password", e.Username)
	}
	return nil
}

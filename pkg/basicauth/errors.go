package basicauth

import "errors"

var (
	// ErrUnauthorized reports missing, malformed or wrong credentials.
	// Unknown users and wrong passwords are not distinguished.
	ErrUnauthorized = errors.New("basicauth.unauthorized")

	// ErrUnhandledCharacter indicates a realm name that cannot appear in a
	// WWW-Authenticate header value.
	ErrUnhandledCharacter = errors.New("basicauth.realm_unhandled_character")

	// ErrInvalidUsersFile indicates a users file that cannot be parsed or
	// contains an invalid entry.
	ErrInvalidUsersFile = errors.New("basicauth.invalid_users_file")

	// ErrLoadCredentials indicates credentials could not be read from a backend.
	ErrLoadCredentials = errors.New("basicauth.load_credentials_failed")
)

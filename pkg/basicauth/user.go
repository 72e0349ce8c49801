package basicauth

import "log/slog"

// User is an account name that passed verification. Only this package
// creates non-zero values.
type User struct {
	name string
}

// Name returns the verified username.
func (u User) Name() string { return u.name }

func (u User) String() string { return u.name }

func (u User) LogValue() slog.Value { return slog.StringValue(u.name) }

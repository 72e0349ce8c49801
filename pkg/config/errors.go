package config

import "errors"

var (
	// ErrParsingConfig wraps caarlos0/env errors: a missing required
	// variable or a value that does not parse into the field type.
	ErrParsingConfig  = errors.New("config.parse_failed")
	ErrLoadingEnvFile = errors.New("config.env_file_failed")
	ErrNilPointer     = errors.New("config.nil_pointer")
)

// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with env tags:
//
//	var cfg basicauth.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each config type is parsed once and cached for the life of the process, so
// packages can call Load for their own Config without coordinating. LoadEnv
// reads additional .env files; ResetCache clears the cache between tests.
//
// Failures wrap ErrParsingConfig or ErrLoadingEnvFile and can be matched
// with errors.Is.
package config

package clientip

// Config holds client IP resolution configuration
type Config struct {
	// TrustedHeaders lists forwarding headers set by a trusted proxy, e.g.
	// "CF-Connecting-IP,X-Forwarded-For". Leave empty when clients connect
	// directly, otherwise they can spoof their address.
	TrustedHeaders []string `env:"CLIENT_IP_TRUSTED_HEADERS" envSeparator:","`
}

// NewFromConfig creates a Resolver from the provided Config.
func NewFromConfig(cfg Config) Resolver {
	return Resolver{Headers: cfg.TrustedHeaders}
}

package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct using `env`
// and `envDefault` tags.
//
//	type Config struct {
//	    Port     int    `env:"STOREFRONT_HTTP_PORT" envDefault:"3000"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ValidatePort reports an error when port is outside 1..65535.
func ValidatePort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid %s: %d", name, port)
	}
	return nil
}

// ValidateBaseURL reports an error unless raw is an absolute http(s) URL.
func ValidateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid %s: %q must be an absolute http(s) URL", name, raw)
	}
	return nil
}

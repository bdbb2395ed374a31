package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Env         string   `envconfig:"APP_ENV" default:"development"`
	HTTPPort    int      `envconfig:"PORT" default:"5000"`
	SMTPHost    string   `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort    int      `envconfig:"SMTP_PORT" default:"587"`
	EmailUser   string   `envconfig:"EMAIL_USER"`
	EmailPass   string   `envconfig:"EMAIL_PASS"`
	CORSOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to envconfig.Process")
	}
	if err := validateOrigins(cfg.CORSOrigins); err != nil {
		return Config{}, errors.Wrap(err, "invalid CORS_ALLOW_ORIGINS")
	}
	return cfg, nil
}

// validateOrigins accepts "*" and http(s) origins, the forms the CORS
// middleware takes without panicking.
func validateOrigins(origins []string) error {
	for _, o := range origins {
		if o == "*" || strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			continue
		}
		return errors.Errorf("origin %q must be '*' or start with http:// or https://", o)
	}
	return nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c Config) AllowAllOrigins() bool {
	if len(c.CORSOrigins) == 0 {
		return true
	}
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Token is the Airtable bearer credential. May be empty; the service
	// starts anyway and /health reports the degraded state.
	Token        string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// UpstreamTimeout bounds each call to the Airtable API.
	UpstreamTimeout time.Duration
}

// LoadConfig resolves configuration from the environment exactly once at
// startup. AIRTABLE_API_KEY takes precedence over
// AIRTABLE_PERSONAL_ACCESS_TOKEN.
func LoadConfig() (*Config, error) {
	token := os.Getenv("AIRTABLE_API_KEY")
	if token == "" {
		token = os.Getenv("AIRTABLE_PERSONAL_ACCESS_TOKEN")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	cfg := &Config{
		Token:           token,
		Port:            port,
		ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 60*time.Second),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	return nil
}

// HasToken reports whether a credential was configured. A missing token is
// not a startup failure; proxied routes still attempt (and fail) upstream.
func (c *Config) HasToken() bool {
	return c.Token != ""
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Try parsing as duration string? e.g. "10s"
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}

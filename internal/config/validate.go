package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Speech.validate(); err != nil {
		return fmt.Errorf("speech: %w", err)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if err := validateURL(s.Endpoint); err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if err := validateURL(s.PublicBaseURL); err != nil {
		return fmt.Errorf("public_base_url: %w", err)
	}
	if s.Bucket == "" {
		return fmt.Errorf("bucket must not be empty")
	}
	// Artifact URLs are joined with "/"; a trailing slash here would
	// produce double slashes in every public URL.
	s.PublicBaseURL = strings.TrimRight(s.PublicBaseURL, "/")
	return nil
}

func (s *SpeechConfig) validate() error {
	if err := validateURL(s.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	return nil
}

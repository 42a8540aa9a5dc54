package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultChallengeURL    = "https://auth-server.holo.host/v1/challenge"
	DefaultRegistrationURL = "http://localhost:4000/register-user/"
	DefaultBackoffBase     = time.Second
)

// ClientConfig contains all configuration parameters for the bootstrap client.
type ClientConfig struct {
	// ChallengeURL is the device challenge endpoint (phase one).
	ChallengeURL string `yaml:"challenge_url"`

	// RegistrationURL is the host registration endpoint (phase two).
	RegistrationURL string `yaml:"registration_url"`

	// ZeroTierIdentityPath is the ZeroTier identity file to read the address from.
	ZeroTierIdentityPath string `yaml:"zerotier_identity_path"`

	// BackoffBase is the wait after the first failed attempt of a phase.
	// Every further failure doubles it.
	BackoffBase time.Duration `yaml:"backoff_base"`

	// RequestTimeout bounds a single HTTP exchange. Zero leaves it to the transport.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Log is the structured logger for client operations.
	Log *slog.Logger `yaml:"-"`
}

// DefaultClientConfig returns the production defaults.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ChallengeURL:    DefaultChallengeURL,
		RegistrationURL: DefaultRegistrationURL,
		BackoffBase:     DefaultBackoffBase,
	}
}

// LoadClientConfigFile overlays the YAML settings file at path on top of the defaults.
func LoadClientConfigFile(path string) (*ClientConfig, error) {
	cfg := DefaultClientConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse settings file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the endpoints and durations.
func (c *ClientConfig) Validate() error {
	if err := validateEndpoint(c.ChallengeURL); err != nil {
		return fmt.Errorf("invalid challenge url: %w", err)
	}
	if err := validateEndpoint(c.RegistrationURL); err != nil {
		return fmt.Errorf("invalid registration url: %w", err)
	}
	if c.BackoffBase <= 0 {
		return errors.New("backoff base must be positive")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	return nil
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

package config

import (
	"errors"
	"os"
	"regexp"

	"github.com/pelletier/go-toml"
)

const (
	DefaultListenAddress   = "0.0.0.0:8545"
	DefaultUpstreamURL     = "https://data.norges-bank.no/api/data/EXR"
	DefaultUpstreamTimeout = 30 // seconds
)

var (
	ErrInvalidListenAddress   = errors.New("invalid listen address")
	ErrInvalidUpstreamURL     = errors.New("invalid upstream URL")
	ErrInvalidUpstreamTimeout = errors.New("invalid upstream timeout")
)

var listenAddressRegex = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}:\d+$`)

// Config defines the base-level server configuration
type Config struct {
	// The associated CORS config, if any
	CORSConfig *CORS `toml:"cors_config"`

	// The address at which the server will be served.
	// Format should be: <IP>:<PORT>
	ListenAddress string `toml:"listen_address"`

	// The base URL of the Norges Bank statistical data API
	UpstreamURL string `toml:"upstream_url"`

	// The upstream request timeout, in seconds
	UpstreamTimeout int `toml:"upstream_timeout_seconds"`
}

// DefaultConfig returns the default server configuration
func DefaultConfig() *Config {
	return &Config{
		ListenAddress:   DefaultListenAddress,
		CORSConfig:      DefaultCORSConfig(),
		UpstreamURL:     DefaultUpstreamURL,
		UpstreamTimeout: DefaultUpstreamTimeout,
	}
}

// ValidateConfig validates the server configuration
func ValidateConfig(config *Config) error {
	// Validate the listen address
	if !listenAddressRegex.MatchString(config.ListenAddress) {
		return ErrInvalidListenAddress
	}

	// Validate the upstream API params
	if config.UpstreamURL == "" {
		return ErrInvalidUpstreamURL
	}

	if config.UpstreamTimeout <= 0 {
		return ErrInvalidUpstreamTimeout
	}

	return nil
}

// Read reads the configuration from the given path
func Read(path string) (*Config, error) {
	// Read the config file
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse it, on top of the defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

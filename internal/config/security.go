package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SecurityConfig is the optional YAML file named by SECURITY_CONFIG. Zero
// values leave the environment settings untouched.
type SecurityConfig struct {
	Security struct {
		JWT struct {
			Issuer   string `yaml:"issuer"`
			Audience string `yaml:"audience"`
			TTL      string `yaml:"ttl"`
		} `yaml:"jwt"`
		Password struct {
			BcryptCost int `yaml:"bcrypt_cost"`
		} `yaml:"password"`
		RateLimit struct {
			AuthPerMinute int `yaml:"auth_per_minute"`
		} `yaml:"rate_limit"`
	} `yaml:"security"`

	ttl time.Duration
}

// LoadSecurityConfig loads security configuration from YAML file.
// The path parameter is expected to come from a trusted source (environment).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by the operator, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if raw := config.Security.JWT.TTL; raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("jwt ttl: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("jwt ttl must be positive")
		}
		config.ttl = d
	}

	if config.Security.Password.BcryptCost < 0 {
		return fmt.Errorf("bcrypt_cost must not be negative")
	}

	if config.Security.RateLimit.AuthPerMinute < 0 {
		return fmt.Errorf("auth_per_minute must not be negative")
	}

	return nil
}

// Apply copies every non-zero setting onto cfg.
func (c *SecurityConfig) Apply(cfg *Config) {
	if c.Security.JWT.Issuer != "" {
		cfg.JWT.Issuer = c.Security.JWT.Issuer
	}
	if c.Security.JWT.Audience != "" {
		cfg.JWT.Audience = c.Security.JWT.Audience
	}
	if c.ttl > 0 {
		cfg.JWT.TTL = c.ttl
	}
	if c.Security.Password.BcryptCost > 0 {
		cfg.BcryptCost = c.Security.Password.BcryptCost
	}
	if c.Security.RateLimit.AuthPerMinute > 0 {
		cfg.AuthRateLimit = c.Security.RateLimit.AuthPerMinute
	}
}

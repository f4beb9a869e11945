// Package config loads process configuration from the environment, an
// optional .env file and an optional security YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const minJWTSecretLength = 32

var weakSecrets = []string{"secret", "password", "test", "admin", "default"}

// JWTConfig holds token issuing and verification settings.
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Config is the runtime configuration of the API process.
type Config struct {
	HTTPAddr    string
	Version     string
	LogLevel    string
	DatabaseURL string
	JWT         JWTConfig
	BcryptCost  int
	// AuthRateLimit is the number of requests per minute a single client IP
	// may send to the login and registration endpoints.
	AuthRateLimit      int
	SecurityConfigPath string
}

// Load reads .env (when present) into the environment, builds a Config from
// environment variables, applies SECURITY_CONFIG overrides and validates it.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := FromEnv()
	if cfg.SecurityConfigPath != "" {
		sec, err := LoadSecurityConfig(cfg.SecurityConfigPath)
		if err != nil {
			return nil, err
		}
		sec.Apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables and defaults without
// validating it.
func FromEnv() *Config {
	return &Config{
		HTTPAddr:    GetEnvString("HTTP_ADDR", ":8080"),
		Version:     GetEnvString("VERSION", "dev"),
		LogLevel:    GetEnvString("LOG_LEVEL", "info"),
		DatabaseURL: GetEnvString("DATABASE_URL", ""),
		JWT: JWTConfig{
			Secret:   GetEnvString("JWT_SECRET", ""),
			Issuer:   GetEnvString("JWT_ISSUER", "articles-api"),
			Audience: GetEnvString("JWT_AUDIENCE", "articles-api"),
			TTL:      GetEnvDuration("JWT_TTL", time.Hour),
		},
		BcryptCost:         GetEnvInt("BCRYPT_COST", 11),
		AuthRateLimit:      GetEnvInt("AUTH_RATE_LIMIT", 10),
		SecurityConfigPath: GetEnvString("SECURITY_CONFIG", ""),
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if err := ValidateJWTSecret(c.JWT.Secret); err != nil {
		return err
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWT.TTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.AuthRateLimit <= 0 {
		return fmt.Errorf("AUTH_RATE_LIMIT must be positive, got %d", c.AuthRateLimit)
	}
	return nil
}

// ValidateJWTSecret rejects empty, short and well-known secrets.
func ValidateJWTSecret(secret string) error {
	if secret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if len(secret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength)
	}
	lower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if lower == weak || lower == weak+"123" || strings.Repeat(weak, len(lower)/len(weak)) == lower {
			return errors.New("JWT_SECRET must not be a common weak value")
		}
	}
	return nil
}

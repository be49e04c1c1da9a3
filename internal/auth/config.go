package auth

import (
	"time"

	"pickup-sports-backend/internal/config"
	apperrors "pickup-sports-backend/internal/errors"
)

// AuthConfig holds the token settings of the identity provider
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TTL       time.Duration
}

// NewAuthConfig takes the token settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TTL:       cfg.JWTTTL(),
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return apperrors.NewConfigurationError("JWT secret is required")
	}
	if c.TTL <= 0 {
		return apperrors.NewConfigurationError("token lifetime must be positive")
	}
	return nil
}

package auth

import (
	"fmt"
	"time"

	"camp-records-backend/internal/config"
)

// ProviderConfig holds OAuth client credentials for a single provider
type ProviderConfig struct {
	ClientID          string `mapstructure:"client_id"`
	ClientSecret      string `mapstructure:"client_secret"`
	EnterpriseBaseURL string `mapstructure:"enterprise_base_url"`
}

// AuthConfig holds the authentication configuration
type AuthConfig struct {
	JWTSecret     string                    `mapstructure:"jwt_secret"`
	JWTExpiry     time.Duration             `mapstructure:"jwt_expiry"`
	RefreshExpiry time.Duration             `mapstructure:"refresh_expiry"`
	RedirectURL   string                    `mapstructure:"redirect_url"`
	Providers     map[string]ProviderConfig `mapstructure:"providers"`
}

// NewAuthConfig builds the authentication configuration from the
// application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	jwtExpiry := time.Duration(cfg.JWTExpiryMinutes) * time.Minute
	if jwtExpiry <= 0 {
		jwtExpiry = time.Hour
	}
	refreshExpiry := time.Duration(cfg.RefreshExpiryDays) * 24 * time.Hour
	if refreshExpiry <= 0 {
		refreshExpiry = 14 * 24 * time.Hour
	}

	return &AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		JWTExpiry:     jwtExpiry,
		RefreshExpiry: refreshExpiry,
		RedirectURL:   cfg.GitHubRedirectURL,
		Providers: map[string]ProviderConfig{
			"github": {
				ClientID:     cfg.GitHubClientID,
				ClientSecret: cfg.GitHubClientSecret,
			},
		},
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}
	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}
	for name, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", name)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", name)
		}
	}
	return nil
}

// GetProvider returns the configuration for a named provider
func (c *AuthConfig) GetProvider(name string) (*ProviderConfig, error) {
	provider, ok := c.Providers[name]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not found", name)
	}
	return &provider, nil
}

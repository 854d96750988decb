package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// On-load modes understood by the auth binding
const (
	OnLoadLoginRequired = "login-required"
	OnLoadCheckSSO      = "check-sso"
)

type Config struct {
	Port        string
	Environment string
	API         APIConfig
	Auth        AuthConfig
	LogLevel    string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AuthConfig struct {
	ServerURL    string
	Realm        string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	RefreshToken string
	OnLoad       string
	MinValidity  time.Duration
	AdminRole    string
}

// HasCredentials reports whether any grant can be attempted without user input
func (a AuthConfig) HasCredentials() bool {
	return a.Username != "" || a.RefreshToken != ""
}

// IssuerURL is the realm base URL of the identity provider
func (a AuthConfig) IssuerURL() string {
	return fmt.Sprintf("%s/realms/%s", strings.TrimSuffix(a.ServerURL, "/"), a.Realm)
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("API_BASE_URL", "http://localhost:8085")
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("AUTH_SERVER_URL", "http://localhost:8080")
	viper.SetDefault("AUTH_ON_LOAD", OnLoadLoginRequired)
	viper.SetDefault("AUTH_MIN_VALIDITY", "30s")
	viper.SetDefault("AUTH_ADMIN_ROLE", "admin")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	apiTimeout, err := time.ParseDuration(getEnvOrViper("API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}
	minValidity, err := time.ParseDuration(getEnvOrViper("AUTH_MIN_VALIDITY", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_MIN_VALIDITY: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "3000"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		API: APIConfig{
			BaseURL: strings.TrimSuffix(getEnvOrViper("API_BASE_URL", "http://localhost:8085"), "/"),
			Timeout: apiTimeout,
		},
		Auth: AuthConfig{
			ServerURL:    getEnvOrViper("AUTH_SERVER_URL", "http://localhost:8080"),
			Realm:        getEnvOrViper("AUTH_REALM", ""),
			ClientID:     getEnvOrViper("AUTH_CLIENT_ID", ""),
			ClientSecret: getEnvOrViper("AUTH_CLIENT_SECRET", ""),
			Username:     getEnvOrViper("AUTH_USERNAME", ""),
			Password:     getEnvOrViper("AUTH_PASSWORD", ""),
			RefreshToken: getEnvOrViper("AUTH_REFRESH_TOKEN", ""),
			OnLoad:       getEnvOrViper("AUTH_ON_LOAD", OnLoadLoginRequired),
			MinValidity:  minValidity,
			AdminRole:    getEnvOrViper("AUTH_ADMIN_ROLE", "admin"),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Auth.Realm == "" {
		return nil, fmt.Errorf("AUTH_REALM is required")
	}
	if cfg.Auth.ClientID == "" {
		return nil, fmt.Errorf("AUTH_CLIENT_ID is required")
	}
	if cfg.Auth.OnLoad != OnLoadLoginRequired && cfg.Auth.OnLoad != OnLoadCheckSSO {
		return nil, fmt.Errorf("AUTH_ON_LOAD must be %q or %q, got %q", OnLoadLoginRequired, OnLoadCheckSSO, cfg.Auth.OnLoad)
	}
	if cfg.Auth.MinValidity < 0 {
		return nil, fmt.Errorf("AUTH_MIN_VALIDITY must not be negative")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

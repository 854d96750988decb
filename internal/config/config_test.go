package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_REALM", "microservices")
	t.Setenv("AUTH_CLIENT_ID", "react-client")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://localhost:8085", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Auth.MinValidity)
	assert.Equal(t, OnLoadLoginRequired, cfg.Auth.OnLoad)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.Equal(t, "http://localhost:8080/realms/microservices", cfg.Auth.IssuerURL())
	assert.False(t, cfg.Auth.HasCredentials())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AUTH_REALM", "shop")
	t.Setenv("AUTH_CLIENT_ID", "dash")
	t.Setenv("API_BASE_URL", "http://gateway:8085/")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("AUTH_USERNAME", "user1")
	t.Setenv("AUTH_ON_LOAD", OnLoadCheckSSO)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://gateway:8085", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, OnLoadCheckSSO, cfg.Auth.OnLoad)
	assert.True(t, cfg.Auth.HasCredentials())
}

func TestLoadRequiresRealmAndClient(t *testing.T) {
	t.Setenv("AUTH_REALM", "")
	t.Setenv("AUTH_CLIENT_ID", "react-client")
	_, err := Load()
	assert.ErrorContains(t, err, "AUTH_REALM")

	t.Setenv("AUTH_REALM", "shop")
	t.Setenv("AUTH_CLIENT_ID", "")
	_, err = Load()
	assert.ErrorContains(t, err, "AUTH_CLIENT_ID")
}

func TestLoadRejectsUnknownOnLoad(t *testing.T) {
	t.Setenv("AUTH_REALM", "shop")
	t.Setenv("AUTH_CLIENT_ID", "dash")
	t.Setenv("AUTH_ON_LOAD", "silent")

	_, err := Load()
	assert.ErrorContains(t, err, "AUTH_ON_LOAD")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("AUTH_REALM", "shop")
	t.Setenv("AUTH_CLIENT_ID", "dash")
	t.Setenv("API_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "API_TIMEOUT")
}

package auth

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/config"
	"github.com/enset/dashboard/pkg/errors"
)

func signToken(t *testing.T, username string, clientRoles ...string) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(5 * time.Minute)),
		},
		PreferredUsername: username,
		Email:             username + "@example.com",
		RealmAccess:       Access{Roles: []string{"offline_access"}},
		ResourceAccess: map[string]Access{
			"react-client": {Roles: clientRoles},
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

type tokenServer struct {
	*httptest.Server
	grants      atomic.Int32
	refreshes   atomic.Int32
	logouts     atomic.Int32
	failRefresh atomic.Bool
	expiresIn   int
}

func newTokenServer(t *testing.T, expiresIn int, roles ...string) *tokenServer {
	ts := &tokenServer{expiresIn: expiresIn}
	mux := http.NewServeMux()
	mux.HandleFunc("/realms/shop/protocol/openid-connect/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "react-client", r.PostForm.Get("client_id"))

		switch r.PostForm.Get("grant_type") {
		case "password":
			ts.grants.Add(1)
			if r.PostForm.Get("password") != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"invalid_grant"}`))
				return
			}
		case "refresh_token":
			ts.refreshes.Add(1)
			if ts.failRefresh.Load() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"invalid_grant","error_description":"Session not active"}`))
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  signToken(t, "user1", roles...),
			"refresh_token": "refresh-1",
			"token_type":    "Bearer",
			"expires_in":    ts.expiresIn,
		})
	})
	mux.HandleFunc("/realms/shop/protocol/openid-connect/logout", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))
		ts.logouts.Add(1)
		w.WriteHeader(http.StatusNoContent)
	})
	ts.Server = httptest.NewServer(mux)
	return ts
}

func authConfig(serverURL string) config.AuthConfig {
	return config.AuthConfig{
		ServerURL:   serverURL,
		Realm:       "shop",
		ClientID:    "react-client",
		Username:    "user1",
		Password:    "secret",
		OnLoad:      config.OnLoadLoginRequired,
		MinValidity: 30 * time.Second,
		AdminRole:   "admin",
	}
}

func TestInitPasswordGrant(t *testing.T) {
	server := newTokenServer(t, 300, "admin", "user")
	defer server.Close()

	kc := NewKeycloak(authConfig(server.URL), zap.NewNop())
	ok, err := kc.Init(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, kc.Authenticated())

	identity := kc.Identity()
	assert.Equal(t, "user1", identity.Username)
	assert.Equal(t, "user1@example.com", identity.Email)
	assert.Equal(t, []string{"admin", "user"}, identity.ClientRoles)
	assert.Equal(t, []string{"offline_access"}, identity.RealmRoles)
	assert.True(t, identity.Admin)
}

func TestInitNonAdmin(t *testing.T) {
	server := newTokenServer(t, 300, "user")
	defer server.Close()

	kc := NewKeycloak(authConfig(server.URL), zap.NewNop())
	_, err := kc.Init(context.Background())
	require.NoError(t, err)
	assert.False(t, kc.Identity().Admin)
}

func TestInitBadCredentials(t *testing.T) {
	server := newTokenServer(t, 300)
	defer server.Close()

	cfg := authConfig(server.URL)
	cfg.Password = "wrong"
	kc := NewKeycloak(cfg, zap.NewNop())

	ok, err := kc.Init(context.Background())
	assert.False(t, ok)
	var initErr *errors.ErrAuthInit
	assert.True(t, stderrors.As(err, &initErr))
	assert.False(t, kc.Authenticated())
}

func TestInitCheckSSOWithoutCredentials(t *testing.T) {
	cfg := authConfig("http://127.0.0.1:1")
	cfg.Username = ""
	cfg.OnLoad = config.OnLoadCheckSSO

	ok, err := NewKeycloak(cfg, zap.NewNop()).Init(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInitLoginRequiredWithoutCredentials(t *testing.T) {
	cfg := authConfig("http://127.0.0.1:1")
	cfg.Username = ""

	_, err := NewKeycloak(cfg, zap.NewNop()).Init(context.Background())
	var initErr *errors.ErrAuthInit
	assert.True(t, stderrors.As(err, &initErr))
}

func TestInitWithRefreshToken(t *testing.T) {
	server := newTokenServer(t, 300)
	defer server.Close()

	cfg := authConfig(server.URL)
	cfg.Username = ""
	cfg.RefreshToken = "offline-token"

	ok, err := NewKeycloak(cfg, zap.NewNop()).Init(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(1), server.refreshes.Load())
	assert.Zero(t, server.grants.Load())
}

func TestBearerTokenSkipsRefreshWhenFresh(t *testing.T) {
	server := newTokenServer(t, 300)
	defer server.Close()

	kc := NewKeycloak(authConfig(server.URL), zap.NewNop())
	_, err := kc.Init(context.Background())
	require.NoError(t, err)

	token, err := kc.BearerToken(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Zero(t, server.refreshes.Load())
}

func TestBearerTokenRefreshesInsideWindow(t *testing.T) {
	// expires_in below the 30s freshness window forces a refresh on every call
	server := newTokenServer(t, 10)
	defer server.Close()

	kc := NewKeycloak(authConfig(server.URL), zap.NewNop())
	_, err := kc.Init(context.Background())
	require.NoError(t, err)

	_, err = kc.BearerToken(context.Background())
	require.NoError(t, err)
	_, err = kc.BearerToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), server.refreshes.Load())
}

func TestUpdateTokenUsesClock(t *testing.T) {
	server := newTokenServer(t, 300)
	defer server.Close()

	kc := NewKeycloak(authConfig(server.URL), zap.NewNop())
	_, err := kc.Init(context.Background())
	require.NoError(t, err)

	kc.now = func() time.Time { return time.Now().Add(290 * time.Second) }
	refreshed, err := kc.UpdateToken(context.Background(), 30*time.Second)
	require.NoError(t, err)
	assert.True(t, refreshed)
}

func TestBearerTokenRefreshFailure(t *testing.T) {
	server := newTokenServer(t, 10)
	defer server.Close()

	kc := NewKeycloak(authConfig(server.URL), zap.NewNop())
	_, err := kc.Init(context.Background())
	require.NoError(t, err)

	server.failRefresh.Store(true)
	_, err = kc.BearerToken(context.Background())
	var refreshErr *errors.ErrTokenRefresh
	assert.True(t, stderrors.As(err, &refreshErr))
}

func TestBearerTokenBeforeInit(t *testing.T) {
	kc := NewKeycloak(authConfig("http://127.0.0.1:1"), zap.NewNop())
	_, err := kc.BearerToken(context.Background())
	var refreshErr *errors.ErrTokenRefresh
	assert.True(t, stderrors.As(err, &refreshErr))
}

func TestLogout(t *testing.T) {
	server := newTokenServer(t, 300)
	defer server.Close()

	kc := NewKeycloak(authConfig(server.URL), zap.NewNop())
	_, err := kc.Init(context.Background())
	require.NoError(t, err)

	require.NoError(t, kc.Logout(context.Background()))
	assert.False(t, kc.Authenticated())
	assert.Equal(t, int32(1), server.logouts.Load())
	assert.Equal(t, Identity{}, kc.Identity())
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	_, err := ParseClaims("not-a-jwt")
	assert.Error(t, err)
}

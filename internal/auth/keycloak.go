package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/enset/dashboard/internal/config"
	"github.com/enset/dashboard/pkg/errors"
)

// Keycloak binds the dashboard session to an OpenID Connect realm. It holds
// the current token pair and refreshes it on demand.
type Keycloak struct {
	cfg        config.AuthConfig
	oauth      *oauth2.Config
	logoutURL  string
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time

	mu     sync.Mutex
	token  *oauth2.Token
	claims *Claims
}

// NewKeycloak creates an auth binding for the configured realm and client
func NewKeycloak(cfg config.AuthConfig, logger *zap.Logger) *Keycloak {
	issuer := cfg.IssuerURL()
	return &Keycloak{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   issuer + "/protocol/openid-connect/auth",
				TokenURL:  issuer + "/protocol/openid-connect/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
			Scopes: []string{"openid"},
		},
		logoutURL: issuer + "/protocol/openid-connect/logout",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// Init performs the initial exchange with the identity provider.
// In check-sso mode a missing credential set is reported as unauthenticated
// rather than as an error.
func (k *Keycloak) Init(ctx context.Context) (bool, error) {
	if !k.cfg.HasCredentials() {
		if k.cfg.OnLoad == config.OnLoadCheckSSO {
			k.logger.Info("No credentials configured, continuing unauthenticated")
			return false, nil
		}
		return false, &errors.ErrAuthInit{Err: fmt.Errorf("no credentials configured for %s mode", k.cfg.OnLoad)}
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, k.httpClient)

	var (
		token *oauth2.Token
		err   error
	)
	if k.cfg.Username != "" {
		token, err = k.oauth.PasswordCredentialsToken(ctx, k.cfg.Username, k.cfg.Password)
	} else {
		token, err = k.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: k.cfg.RefreshToken}).Token()
	}
	if err != nil {
		return false, &errors.ErrAuthInit{Err: err}
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.setTokenLocked(token); err != nil {
		return false, &errors.ErrAuthInit{Err: err}
	}

	k.logger.Info("Authenticated",
		zap.String("username", k.claims.PreferredUsername),
		zap.Time("expires_at", k.expiryLocked()),
	)
	return true, nil
}

// UpdateToken refreshes the access token if it expires within minValidity.
// It reports whether a refresh happened.
func (k *Keycloak) UpdateToken(ctx context.Context, minValidity time.Duration) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.token == nil {
		return false, &errors.ErrTokenRefresh{Err: &errors.ErrNotAuthenticated{}}
	}

	expiry := k.expiryLocked()
	if expiry.IsZero() || expiry.Sub(k.now()) >= minValidity {
		return false, nil
	}
	if k.token.RefreshToken == "" {
		return false, &errors.ErrTokenRefresh{Err: stderrors.New("no refresh token available")}
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, k.httpClient)
	token, err := k.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: k.token.RefreshToken}).Token()
	if err != nil {
		k.logger.Warn("Token refresh failed", zap.Error(err))
		return false, &errors.ErrTokenRefresh{Err: err}
	}
	if err := k.setTokenLocked(token); err != nil {
		return false, &errors.ErrTokenRefresh{Err: err}
	}

	k.logger.Debug("Token refreshed", zap.Time("expires_at", k.expiryLocked()))
	return true, nil
}

// BearerToken returns an access token valid for at least the configured
// freshness window, refreshing it first when needed.
func (k *Keycloak) BearerToken(ctx context.Context) (string, error) {
	if _, err := k.UpdateToken(ctx, k.cfg.MinValidity); err != nil {
		return "", err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if k.token == nil {
		return "", &errors.ErrTokenRefresh{Err: &errors.ErrNotAuthenticated{}}
	}
	return k.token.AccessToken, nil
}

// Authenticated reports whether a token is currently held
func (k *Keycloak) Authenticated() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.token != nil
}

// Identity returns the display identity parsed from the current token
func (k *Keycloak) Identity() Identity {
	k.mu.Lock()
	defer k.mu.Unlock()
	return IdentityFrom(k.claims, k.cfg.ClientID, k.cfg.AdminRole)
}

// Logout ends the session at the identity provider. Local tokens are
// dropped even if the remote call fails.
func (k *Keycloak) Logout(ctx context.Context) error {
	k.mu.Lock()
	token := k.token
	k.token = nil
	k.claims = nil
	k.mu.Unlock()

	if token == nil || token.RefreshToken == "" {
		return nil
	}

	form := url.Values{}
	form.Set("client_id", k.cfg.ClientID)
	if k.cfg.ClientSecret != "" {
		form.Set("client_secret", k.cfg.ClientSecret)
	}
	form.Set("refresh_token", token.RefreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.logoutURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create logout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute logout request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("logout failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	k.logger.Info("Logged out")
	return nil
}

func (k *Keycloak) setTokenLocked(token *oauth2.Token) error {
	claims, err := ParseClaims(token.AccessToken)
	if err != nil {
		return err
	}
	k.token = token
	k.claims = claims
	return nil
}

// expiryLocked prefers the token endpoint's expires_in and falls back to the
// exp claim.
func (k *Keycloak) expiryLocked() time.Time {
	if k.token != nil && !k.token.Expiry.IsZero() {
		return k.token.Expiry
	}
	if k.claims != nil && k.claims.ExpiresAt != nil {
		return k.claims.ExpiresAt.Time
	}
	return time.Time{}
}

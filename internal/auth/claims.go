package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Access is a role list inside realm_access or resource_access
type Access struct {
	Roles []string `json:"roles"`
}

// Claims is the subset of the identity provider's access token the
// dashboard reads. Signatures are not verified here; the storefront API is
// the authority on every request.
type Claims struct {
	jwt.RegisteredClaims
	PreferredUsername string            `json:"preferred_username"`
	Email             string            `json:"email"`
	Name              string            `json:"name"`
	RealmAccess       Access            `json:"realm_access"`
	ResourceAccess    map[string]Access `json:"resource_access"`
}

// ParseClaims decodes the payload of an access token without verifying it
func ParseClaims(accessToken string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	return claims, nil
}

// ClientRoles returns the roles granted to the user for clientID
func (c *Claims) ClientRoles(clientID string) []string {
	if c.ResourceAccess == nil {
		return nil
	}
	return c.ResourceAccess[clientID].Roles
}

// HasClientRole reports whether role is granted for clientID
func (c *Claims) HasClientRole(clientID, role string) bool {
	for _, r := range c.ClientRoles(clientID) {
		if r == role {
			return true
		}
	}
	return false
}

// Identity is the display view of the authenticated user
type Identity struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Name        string   `json:"name,omitempty"`
	RealmRoles  []string `json:"realm_roles"`
	ClientRoles []string `json:"client_roles"`
	Admin       bool     `json:"admin"`
}

// IdentityFrom builds an Identity. Admin is a display gate only.
func IdentityFrom(c *Claims, clientID, adminRole string) Identity {
	if c == nil {
		return Identity{}
	}
	return Identity{
		Username:    c.PreferredUsername,
		Email:       c.Email,
		Name:        c.Name,
		RealmRoles:  c.RealmAccess.Roles,
		ClientRoles: c.ClientRoles(clientID),
		Admin:       c.HasClientRole(clientID, adminRole),
	}
}

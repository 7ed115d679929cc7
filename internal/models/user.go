// Package models defines the data structures exchanged with the remote
// catalog, identity, and order services and shared across the application.
package models

// Role represents a user's permission level as reported by the identity service.
type Role string

// RoleAdmin may use the admin area.
const RoleAdmin Role = "admin"

// Profile is the authenticated user's profile from /v1/users/me.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

// IsAdmin returns true if the user has the admin role.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// DisplayName returns the name, falling back to the email when empty.
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.Name != "" {
		return p.Name
	}
	return p.Email
}

// LoginInput is the request body for /v1/auth/login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the identity service's login response.
type LoginResult struct {
	Token string `json:"token"`
}

// RegisterInput is the request body for /v1/auth/register.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

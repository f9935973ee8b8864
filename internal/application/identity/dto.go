package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/application/sanitize"
	"github.com/ivoirestore/backend/internal/domain/identity"
)

// RegisterRequest represents an admin registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin"`
}

// Sanitized returns a copy with name normalized and email trimmed and lower-cased.
// The password is left untouched.
func (r RegisterRequest) Sanitized() RegisterRequest {
	r.Name = sanitize.Text(r.Name)
	r.Email = sanitize.Email(r.Email)
	return r
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Sanitized returns a copy with the email trimmed and lower-cased.
func (r LoginRequest) Sanitized() LoginRequest {
	r.Email = sanitize.Email(r.Email)
	return r
}

// AdminInfo is the public view of an admin account; the password hash is never included
type AdminInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResult is returned by register and login
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     AdminInfo
}

// ToAdminInfo converts a domain Admin
func ToAdminInfo(a *identity.Admin) AdminInfo {
	return AdminInfo{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

package models

import "time"

// Role is the closed set of roles the engine understands.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a raw role claim onto the closed Role set.
// Anything unrecognized degrades to RoleMember so a malformed claim never grants access.
func ParseRole(raw string) Role {
	if raw == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleMember
}

// Account is the engine's view of a user: identity, profile visibility and role.
// Credentials and the rest of the profile live in the identity subsystem.
type Account struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	DisplayName     string    `json:"display_name" gorm:"type:varchar(50)"`
	IsProfilePublic bool      `json:"is_profile_public" gorm:"default:false"`
	Role            Role      `json:"role" gorm:"type:varchar(20);default:'member'"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsAdmin reports whether the account carries the admin role.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// CreateAccountRequest defines the request body for registering an engine account
type CreateAccountRequest struct {
	DisplayName     string `json:"display_name" validate:"required,min=2,max=50"`
	IsProfilePublic bool   `json:"is_profile_public"`
	Role            string `json:"role" validate:"omitempty,oneof=member admin"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

var Roles = []string{RoleAdmin, RoleSuperAdmin}

// Admin is a back-office account. PasswordHash never leaves the server.
type Admin struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewAdmin is a validated account with its password already hashed.
type NewAdmin struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

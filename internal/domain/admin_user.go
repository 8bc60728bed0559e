package domain

import "time"

// AdminRole enumerates administrator roles.
type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

// AdminUser models an administrator who triages tickets.
type AdminUser struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         AdminRole
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package dto

import (
	"time"

	"github.com/ijwiryacu/report-service/internal/domain"
	"github.com/ijwiryacu/report-service/internal/session"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminResponse is the administrator identity exposed to clients.
type AdminResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	FullName  string           `json:"full_name"`
	Role      domain.AdminRole `json:"role"`
	LastLogin *time.Time       `json:"last_login"`
}

// LoginResponse carries the session token and identity after login.
type LoginResponse struct {
	Admin     AdminResponse `json:"admin"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// SessionResponse describes the restored session.
type SessionResponse struct {
	Admin AdminResponse     `json:"admin"`
	View  session.ViewState `json:"view"`
}

// UpdateViewRequest payload.
type UpdateViewRequest struct {
	Section  session.Section  `json:"section"`
	Language session.Language `json:"language"`
}

// NewAdminResponse maps a domain admin to its API representation.
func NewAdminResponse(admin *domain.AdminUser) AdminResponse {
	return AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		FullName:  admin.FullName,
		Role:      admin.Role,
		LastLogin: admin.LastLogin,
	}
}

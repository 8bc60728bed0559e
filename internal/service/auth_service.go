package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ijwiryacu/report-service/internal/auth"
	"github.com/ijwiryacu/report-service/internal/config"
	"github.com/ijwiryacu/report-service/internal/domain"
	"github.com/ijwiryacu/report-service/internal/repository"
	"github.com/ijwiryacu/report-service/internal/session"
	apperrors "github.com/ijwiryacu/report-service/pkg/util"
)

// SessionStore persists admin session records. Implemented by session.Store.
type SessionStore interface {
	Save(ctx context.Context, rec *session.Record) error
	Delete(ctx context.Context, tokenID string) error
	UpdateView(ctx context.Context, tokenID string, view session.ViewState) (*session.Record, error)
}

// AuthService coordinates admin login, logout and session state.
type AuthService struct {
	admins   repository.AdminRepository
	sessions SessionStore
	tokenMgr *auth.TokenManager
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	AdminRepo    repository.AdminRepository
	SessionStore SessionStore
}

// NewAuthService builds the service.
func NewAuthService(cfg config.SessionConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:   deps.AdminRepo,
		sessions: deps.SessionStore,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.TTL()),
	}
}

// Login authenticates an administrator. The credentials are verified against
// the stored bcrypt hash; only active accounts may log in. On success a
// session record is persisted and last_login is stamped.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AdminUser, string, time.Time, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("email and password required", nil)
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials("admin account not found")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if !admin.IsActive {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials("admin account is inactive")
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials("")
	}

	token, tokenID, expiresAt, err := s.tokenMgr.GenerateToken(admin)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	stored := *admin
	stored.PasswordHash = ""
	rec := &session.Record{
		TokenID:  tokenID,
		Admin:    stored,
		View:     session.DefaultViewState(),
		IssuedAt: time.Now(),
	}
	if err := s.sessions.Save(ctx, rec); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if err := s.admins.TouchLastLogin(ctx, admin.ID); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	return admin, token, expiresAt, nil
}

// Logout removes the session record. Logging out an already-absent session
// succeeds.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if err := s.sessions.Delete(ctx, tokenID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// UpdateView replaces the stored UI state for the session.
func (s *AuthService) UpdateView(ctx context.Context, tokenID string, view session.ViewState) (*session.Record, error) {
	if !view.Section.Valid() {
		return nil, apperrors.NewValidationError("unknown section", map[string]any{"section": view.Section})
	}
	if !view.Language.Valid() {
		return nil, apperrors.NewValidationError("unknown language", map[string]any{"language": view.Language})
	}
	rec, err := s.sessions.UpdateView(ctx, tokenID, view)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("session expired")
		}
		return nil, apperrors.MapError(err)
	}
	return rec, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ijwiryacu/report-service/internal/api/dto"
	"github.com/ijwiryacu/report-service/internal/auth"
	"github.com/ijwiryacu/report-service/internal/service"
	"github.com/ijwiryacu/report-service/internal/session"
	apperrors "github.com/ijwiryacu/report-service/pkg/util"
)

// AdminAuthHandler manages admin login, logout and session state.
type AdminAuthHandler struct {
	service *service.AuthService
}

// NewAdminAuthHandler constructs handler.
func NewAdminAuthHandler(authService *service.AuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: authService}
}

// Login POST /api/admin/login.
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	admin, token, expiresAt, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Admin:     dto.NewAdminResponse(admin),
		Token:     token,
		ExpiresAt: expiresAt,
	}})
}

// Logout POST /api/admin/logout.
func (h *AdminAuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	if err := h.service.Logout(c.Context(), principal.TokenID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Session GET /api/admin/session. Restores the authenticated session.
func (h *AdminAuthHandler) Session(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		Admin: dto.NewAdminResponse(&principal.Admin),
		View:  principal.View,
	}})
}

// UpdateView PUT /api/admin/session/view.
func (h *AdminAuthHandler) UpdateView(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	var req dto.UpdateViewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	rec, err := h.service.UpdateView(c.Context(), principal.TokenID, session.ViewState{
		Section:  req.Section,
		Language: req.Language,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		Admin: dto.NewAdminResponse(&rec.Admin),
		View:  rec.View,
	}})
}

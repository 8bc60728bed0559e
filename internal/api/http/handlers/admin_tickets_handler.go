package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ijwiryacu/report-service/internal/api/dto"
	"github.com/ijwiryacu/report-service/internal/auth"
	"github.com/ijwiryacu/report-service/internal/service"
	apperrors "github.com/ijwiryacu/report-service/pkg/util"
)

// AdminTicketsHandler manages the dashboard triage endpoints.
type AdminTicketsHandler struct {
	service *service.TicketService
}

// NewAdminTicketsHandler constructs handler.
func NewAdminTicketsHandler(ticketService *service.TicketService) *AdminTicketsHandler {
	return &AdminTicketsHandler{service: ticketService}
}

// ListTickets GET /api/admin/tickets.
func (h *AdminTicketsHandler) ListTickets(c *fiber.Ctx) error {
	filter := service.ListFilter{
		Status:   c.Query("status", "all"),
		Category: c.Query("category", "all"),
		Priority: c.Query("priority", "all"),
		Search:   c.Query("search"),
	}
	tickets, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetTicket GET /api/admin/tickets/:id.
func (h *AdminTicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	comments, err := h.service.ListComments(c.Context(), ticket.ID)
	if err != nil {
		return err
	}
	commentItems := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		commentItems = append(commentItems, dto.NewCommentResponse(&comments[i]))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"ticket":   dto.NewTicketResponse(ticket),
		"comments": commentItems,
	}})
}

// UpdateStatus PATCH /api/admin/tickets/:id/status.
func (h *AdminTicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	ticket, err := h.service.UpdateStatus(c.Context(), principal.Admin.ID, c.Params("id"), req.Status, req.AdminNotes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// AddComment POST /api/admin/tickets/:id/comments.
func (h *AdminTicketsHandler) AddComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin required")
	}
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.CommentText) == "" {
		return apperrors.NewValidationError("comment_text required", nil)
	}

	comment, err := h.service.AddComment(c.Context(), principal.Admin.ID, c.Params("id"), req.CommentText)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCommentResponse(comment)})
}

// Statistics GET /api/admin/statistics.
func (h *AdminTicketsHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.service.Statistics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

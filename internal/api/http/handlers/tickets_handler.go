package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ijwiryacu/report-service/internal/api/dto"
	"github.com/ijwiryacu/report-service/internal/service"
	apperrors "github.com/ijwiryacu/report-service/pkg/util"
)

// TicketsHandler manages the public report-submission endpoint.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// SubmitTicket POST /api/tickets.
func (h *TicketsHandler) SubmitTicket(c *fiber.Ctx) error {
	var req dto.SubmitTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	missing := missingFields(map[string]string{
		"title":          req.Title,
		"description":    req.Description,
		"category":       req.Category,
		"contact":        req.Contact,
		"contact_method": string(req.ContactMethod),
	})
	if req.Location == nil || strings.TrimSpace(*req.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("required fields missing", map[string]any{"fields": missing})
	}

	input := service.SubmitInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		Priority:      req.Priority,
		Contact:       req.Contact,
		ContactMethod: req.ContactMethod,
		ReporterName:  req.ReporterName,
	}
	ticket, err := h.service.Submit(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.SubmitTicketResponse{
		Ticket:    dto.NewTicketResponse(ticket),
		Reference: ticket.Reference(),
	}})
}

func missingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

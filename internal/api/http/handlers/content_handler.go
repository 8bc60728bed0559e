package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ijwiryacu/report-service/internal/content"
	"github.com/ijwiryacu/report-service/internal/domain"
	"github.com/ijwiryacu/report-service/internal/session"
)

// ContentHandler serves static landing copy and form option sets.
type ContentHandler struct{}

// NewContentHandler returns a new handler instance.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// Landing GET /api/content/landing.
func (h *ContentHandler) Landing(c *fiber.Ctx) error {
	lang := session.Language(c.Query("lang", string(session.LanguageEnglish)))
	return c.JSON(fiber.Map{"data": content.GetLanding(lang)})
}

// Categories GET /api/content/categories. The fixed category set offered by
// the report form.
func (h *ContentHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": domain.Categories})
}

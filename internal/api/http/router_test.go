package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ijwiryacu/report-service/internal/api/http/handlers"
	"github.com/ijwiryacu/report-service/internal/auth"
	"github.com/ijwiryacu/report-service/internal/domain"
	"github.com/ijwiryacu/report-service/internal/observability"
	"github.com/ijwiryacu/report-service/internal/persistence"
	"github.com/ijwiryacu/report-service/internal/repository"
	"github.com/ijwiryacu/report-service/internal/service"
	"github.com/ijwiryacu/report-service/internal/session"
)

type memTicketRepo struct {
	tickets map[string]*domain.Ticket
	nextID  int
}

func (r *memTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	r.nextID++
	ticket.ID = fmt.Sprintf("8f14e45f-0000-0000-0000-%012d", r.nextID)
	ticket.Status = domain.TicketStatusPending
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	stored := *ticket
	r.tickets[ticket.ID] = &stored
	return nil
}

func (r *memTicketRepo) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *ticket
	return &copied, nil
}

func (r *memTicketRepo) List(_ context.Context, _ repository.TicketFilter) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for _, ticket := range r.tickets {
		result = append(result, *ticket)
	}
	return result, nil
}

func (r *memTicketRepo) UpdateStatus(_ context.Context, id string, status domain.TicketStatus, notes *string) (*domain.Ticket, error) {
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	ticket.Status = status
	if notes != nil {
		ticket.AdminNotes = notes
	}
	copied := *ticket
	return &copied, nil
}

func (r *memTicketRepo) CountByStatus(_ context.Context) (map[domain.TicketStatus]int, error) {
	counts := make(map[domain.TicketStatus]int)
	for _, ticket := range r.tickets {
		counts[ticket.Status]++
	}
	return counts, nil
}

type memCommentRepo struct{}

func (memCommentRepo) Create(_ context.Context, comment *domain.TicketComment) error {
	comment.ID = "comment-1"
	comment.CreatedAt = time.Now()
	return nil
}

func (memCommentRepo) ListByTicket(context.Context, string) ([]domain.TicketComment, error) {
	return nil, nil
}

func newTestApp() *fiber.App {
	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo:  &memTicketRepo{tickets: make(map[string]*domain.Ticket)},
		CommentRepo: memCommentRepo{},
	})
	authMiddleware := auth.NewAuthMiddleware(
		auth.NewTokenManager("test-secret", time.Hour),
		session.NewStore(nil, time.Hour),
	)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Content:        handlers.NewContentHandler(),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		AdminAuth:      handlers.NewAdminAuthHandler(nil),
		AdminTickets:   handlers.NewAdminTicketsHandler(ticketService),
		AuthMiddleware: authMiddleware,
	})
	return app
}

func submitPayload() map[string]any {
	return map[string]any{
		"title":          "Pothole on KN 5 Rd",
		"description":    "Large pothole near the bus stop.",
		"category":       "Infrastructure",
		"location":       "Kigali",
		"contact":        "+250780000000",
		"contact_method": "phone",
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var decoded map[string]any
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded
}

func TestSubmitTicketEndpoint(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/tickets", submitPayload())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %v)", resp.StatusCode, body)
	}

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data envelope: %v", body)
	}
	reference, _ := data["reference"].(string)
	if len(reference) != 8 || reference != strings.ToUpper(reference) {
		t.Errorf("reference = %q, want 8 uppercase chars", reference)
	}
	ticket, _ := data["ticket"].(map[string]any)
	if ticket["status"] != "pending" {
		t.Errorf("submitted ticket status = %v, want pending", ticket["status"])
	}
}

func TestSubmitTicketMissingFields(t *testing.T) {
	app := newTestApp()

	payload := submitPayload()
	delete(payload, "title")
	delete(payload, "location")

	resp, body := doJSON(t, app, http.MethodPost, "/api/tickets", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	errObj, _ := body["error"].(map[string]any)
	if errObj["code"] != "VALIDATION_FAILED" {
		t.Errorf("error envelope = %v", body)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	app := newTestApp()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/tickets"},
		{http.MethodGet, "/api/admin/statistics"},
		{http.MethodGet, "/api/admin/session"},
		{http.MethodPost, "/api/admin/logout"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			resp, body := doJSON(t, app, p.method, p.path, nil)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401 (body %v)", resp.StatusCode, body)
			}
		})
	}
}

func TestLandingContentEndpoint(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/api/content/landing?lang=rw", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data, _ := body["data"].(map[string]any)
	if data["language"] != "rw" {
		t.Errorf("language = %v, want rw", data["language"])
	}
	if data["title"] == "" {
		t.Error("missing landing title")
	}
}

func TestHealthLive(t *testing.T) {
	app := newTestApp()

	resp, body := doJSON(t, app, http.MethodGet, "/health/live", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["status"] != "alive" {
		t.Errorf("body = %v", body)
	}
}

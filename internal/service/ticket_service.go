package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ijwiryacu/report-service/internal/domain"
	"github.com/ijwiryacu/report-service/internal/events"
	"github.com/ijwiryacu/report-service/internal/repository"
	apperrors "github.com/ijwiryacu/report-service/pkg/util"
)

// TicketService coordinates the report and triage workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	CommentRepo repository.CommentRepository
	Dispatcher  events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		comments:   deps.CommentRepo,
		dispatcher: deps.Dispatcher,
	}
}

// SubmitInput describes a community issue report.
type SubmitInput struct {
	Title         string
	Description   string
	Category      string
	Location      *string
	Priority      domain.TicketPriority
	Contact       string
	ContactMethod domain.ContactMethod
	ReporterName  *string
}

// ListFilter describes dashboard listing parameters. Each filter is either
// "all" (or empty, no constraint) or an exact match value. Search matches
// case-insensitively against title or location.
type ListFilter struct {
	Status   string
	Category string
	Priority string
	Search   string
}

// Statistics holds per-status ticket counts.
type Statistics struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

// Submit creates a ticket from a community report. The stored status is
// always pending regardless of caller input.
func (s *TicketService) Submit(ctx context.Context, input SubmitInput) (*domain.Ticket, error) {
	if !domain.ValidCategory(input.Category) {
		return nil, apperrors.NewValidationError("unknown category", map[string]any{"category": input.Category})
	}
	if input.Priority == "" {
		input.Priority = domain.TicketPriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": input.Priority})
	}
	if !input.ContactMethod.Valid() {
		return nil, apperrors.NewValidationError("unknown contact method", map[string]any{"contact_method": input.ContactMethod})
	}

	ticket := &domain.Ticket{
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Category:      input.Category,
		Location:      trimOptional(input.Location),
		Priority:      input.Priority,
		Status:        domain.TicketStatusPending,
		Contact:       strings.TrimSpace(input.Contact),
		ContactMethod: input.ContactMethod,
		ReporterName:  trimOptional(input.ReporterName),
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewSubmissionFailed(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketSubmitted,
		TicketID: ticket.ID,
		Payload: events.TicketSubmittedPayload{
			Category: ticket.Category,
			Priority: ticket.Priority,
			Title:    ticket.Title,
		},
	})
	return ticket, nil
}

// List returns tickets matching the filter, most recent first. Status,
// category and priority constrain the store query; the search term is a
// case-insensitive substring match over title or location.
func (s *TicketService) List(ctx context.Context, filter ListFilter) ([]domain.Ticket, error) {
	repoFilter := repository.TicketFilter{}
	if v := exactFilter(filter.Status); v != nil {
		status := domain.TicketStatus(*v)
		repoFilter.Status = &status
	}
	if v := exactFilter(filter.Category); v != nil {
		repoFilter.Category = v
	}
	if v := exactFilter(filter.Priority); v != nil {
		priority := domain.TicketPriority(*v)
		repoFilter.Priority = &priority
	}

	tickets, err := s.tickets.List(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.NewFetchFailed(err)
	}

	term := strings.TrimSpace(filter.Search)
	if term == "" {
		return tickets, nil
	}
	matched := make([]domain.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if matchesSearch(&ticket, term) {
			matched = append(matched, ticket)
		}
	}
	return matched, nil
}

// Get fetches a single ticket by id.
func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewFetchFailed(err)
	}
	return ticket, nil
}

// UpdateStatus applies an administrator status change. Setting the status a
// ticket already has is rejected. Provided notes replace admin notes.
func (s *TicketService) UpdateStatus(ctx context.Context, adminID, ticketID string, newStatus domain.TicketStatus, notes *string) (*domain.Ticket, error) {
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": newStatus})
	}

	ticket, err := s.Get(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == newStatus {
		return nil, apperrors.NewValidationError("ticket already has this status", map[string]any{"status": newStatus})
	}

	oldStatus := ticket.Status
	updated, err := s.tickets.UpdateStatus(ctx, ticketID, newStatus, trimOptional(notes))
	if err != nil {
		return nil, apperrors.NewUpdateFailed(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: updated.ID,
		AdminID:  &adminID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Notes:     derefOrEmpty(notes),
		},
	})
	return updated, nil
}

// Statistics computes per-status counts with a single aggregate query.
func (s *TicketService) Statistics(ctx context.Context) (*Statistics, error) {
	counts, err := s.tickets.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.NewStatsFailed(err)
	}
	stats := buildStatistics(counts)
	return &stats, nil
}

// AddComment appends an administrator annotation to a ticket.
func (s *TicketService) AddComment(ctx context.Context, adminID, ticketID, text string) (*domain.TicketComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("comment text required", nil)
	}
	if _, err := s.Get(ctx, ticketID); err != nil {
		return nil, err
	}

	comment := &domain.TicketComment{
		TicketID:    ticketID,
		AdminID:     adminID,
		CommentText: text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.NewCommentFailed(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCommentAdded,
		TicketID: ticketID,
		AdminID:  &adminID,
		Payload: events.TicketCommentAddedPayload{
			CommentID:   comment.ID,
			BodyPreview: stringPreview(comment.CommentText, 120),
		},
	})
	return comment, nil
}

// ListComments returns the annotations on a ticket, oldest first.
func (s *TicketService) ListComments(ctx context.Context, ticketID string) ([]domain.TicketComment, error) {
	comments, err := s.comments.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, apperrors.NewFetchFailed(err)
	}
	return comments, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

// matchesSearch reports whether the term matches the ticket title or
// location, case-insensitively.
func matchesSearch(t *domain.Ticket, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(t.Title), term) {
		return true
	}
	return t.Location != nil && strings.Contains(strings.ToLower(*t.Location), term)
}

func buildStatistics(counts map[domain.TicketStatus]int) Statistics {
	stats := Statistics{
		Pending:    counts[domain.TicketStatusPending],
		InProgress: counts[domain.TicketStatusInProgress],
		Resolved:   counts[domain.TicketStatusResolved],
		Closed:     counts[domain.TicketStatusClosed],
	}
	for _, count := range counts {
		stats.Total += count
	}
	return stats
}

// exactFilter maps the "all"/empty sentinel to no constraint.
func exactFilter(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" || value == "all" {
		return nil
	}
	return &value
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func derefOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func stringPreview(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max]
}

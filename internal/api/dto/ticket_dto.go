package dto

import (
	"time"

	"github.com/ijwiryacu/report-service/internal/domain"
)

// SubmitTicketRequest payload.
type SubmitTicketRequest struct {
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Location      *string               `json:"location"`
	Priority      domain.TicketPriority `json:"priority"`
	Contact       string                `json:"contact"`
	ContactMethod domain.ContactMethod  `json:"contact_method"`
	ReporterName  *string               `json:"reporter_name"`
}

// SubmitTicketResponse is the confirmation shown to reporters. Reference is
// the shortened uppercase id quoted back to the community member.
type SubmitTicketResponse struct {
	Ticket    TicketResponse `json:"ticket"`
	Reference string         `json:"reference"`
}

// TicketResponse is the full ticket representation.
type TicketResponse struct {
	ID            string                `json:"id"`
	Reference     string                `json:"reference"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Location      *string               `json:"location"`
	Priority      domain.TicketPriority `json:"priority"`
	Status        domain.TicketStatus   `json:"status"`
	DisplayStatus string                `json:"display_status"`
	Contact       string                `json:"contact"`
	ContactMethod domain.ContactMethod  `json:"contact_method"`
	ReporterName  *string               `json:"reporter_name"`
	AdminNotes    *string               `json:"admin_notes"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	ResolvedAt    *time.Time            `json:"resolved_at"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status     domain.TicketStatus `json:"status"`
	AdminNotes *string             `json:"admin_notes"`
}

// AddCommentRequest payload.
type AddCommentRequest struct {
	CommentText string `json:"comment_text"`
}

// CommentResponse represents a stored annotation.
type CommentResponse struct {
	ID          string    `json:"id"`
	TicketID    string    `json:"ticket_id"`
	AdminID     string    `json:"admin_id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTicketResponse maps a domain ticket to its API representation.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:            ticket.ID,
		Reference:     ticket.Reference(),
		Title:         ticket.Title,
		Description:   ticket.Description,
		Category:      ticket.Category,
		Location:      ticket.Location,
		Priority:      ticket.Priority,
		Status:        ticket.Status,
		DisplayStatus: domain.DisplayStatus(ticket.Status),
		Contact:       ticket.Contact,
		ContactMethod: ticket.ContactMethod,
		ReporterName:  ticket.ReporterName,
		AdminNotes:    ticket.AdminNotes,
		CreatedAt:     ticket.CreatedAt,
		UpdatedAt:     ticket.UpdatedAt,
		ResolvedAt:    ticket.ResolvedAt,
	}
}

// NewCommentResponse maps a domain comment to its API representation.
func NewCommentResponse(comment *domain.TicketComment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID,
		TicketID:    comment.TicketID,
		AdminID:     comment.AdminID,
		CommentText: comment.CommentText,
		CreatedAt:   comment.CreatedAt,
	}
}

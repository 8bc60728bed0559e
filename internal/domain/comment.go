package domain

import "time"

// TicketComment is an administrator annotation attached to a ticket.
type TicketComment struct {
	ID          string
	TicketID    string
	AdminID     string
	CommentText string
	CreatedAt   time.Time
}

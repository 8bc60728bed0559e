package domain

import (
	"strings"
	"time"
)

// TicketStatus enumerates triage states for reported issues.
type TicketStatus string

const (
	TicketStatusPending     TicketStatus = "pending"
	TicketStatusInProgress  TicketStatus = "in_progress"
	TicketStatusProgressive TicketStatus = "progressive"
	TicketStatusResolved    TicketStatus = "resolved"
	TicketStatusComplete    TicketStatus = "complete"
	TicketStatusForwarded   TicketStatus = "forwarded"
	TicketStatusClosed      TicketStatus = "closed"
	TicketStatusCanceled    TicketStatus = "canceled"
)

// Valid reports whether the status is one of the known triage states.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusPending, TicketStatusInProgress, TicketStatusProgressive,
		TicketStatusResolved, TicketStatusComplete, TicketStatusForwarded,
		TicketStatusClosed, TicketStatusCanceled:
		return true
	}
	return false
}

// TicketPriority enumerates urgency classifications.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "critical"
)

// Valid reports whether the priority is a known value.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// ContactMethod enumerates how a reporter wants to be reached.
type ContactMethod string

const (
	ContactMethodPhone    ContactMethod = "phone"
	ContactMethodSMS      ContactMethod = "sms"
	ContactMethodWhatsApp ContactMethod = "whatsapp"
	ContactMethodEmail    ContactMethod = "email"
)

// Valid reports whether the contact method is a known value.
func (m ContactMethod) Valid() bool {
	switch m {
	case ContactMethodPhone, ContactMethodSMS, ContactMethodWhatsApp, ContactMethodEmail:
		return true
	}
	return false
}

// Categories is the fixed set of issue categories offered by the report form.
var Categories = []string{
	"Infrastructure",
	"Healthcare",
	"Education",
	"Water & Sanitation",
	"Transportation",
	"Public Safety",
	"Environment",
	"Other",
}

// ValidCategory reports whether the given category is part of the fixed set.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Ticket is the aggregate for a reported community issue.
type Ticket struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Location      *string
	Priority      TicketPriority
	Status        TicketStatus
	Contact       string
	ContactMethod ContactMethod
	ReporterName  *string
	AdminNotes    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ResolvedAt    *time.Time
}

// Reference returns the short uppercase form of the ticket id shown to
// reporters as their confirmation number.
func (t *Ticket) Reference() string {
	id := t.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// DisplayStatus renders a status value for humans, e.g. "in_progress"
// becomes "In Progress".
func DisplayStatus(s TicketStatus) string {
	parts := strings.Split(string(s), "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

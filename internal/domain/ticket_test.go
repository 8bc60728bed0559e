package domain

import "testing"

func TestTicketStatusValid(t *testing.T) {
	tests := []struct {
		status TicketStatus
		valid  bool
	}{
		{TicketStatusPending, true},
		{TicketStatusInProgress, true},
		{TicketStatusProgressive, true},
		{TicketStatusResolved, true},
		{TicketStatusComplete, true},
		{TicketStatusForwarded, true},
		{TicketStatusClosed, true},
		{TicketStatusCanceled, true},
		{TicketStatus("open"), false},
		{TicketStatus(""), false},
		{TicketStatus("PENDING"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.valid {
				t.Errorf("Valid(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestTicketPriorityValid(t *testing.T) {
	for _, p := range []TicketPriority{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical} {
		if !p.Valid() {
			t.Errorf("priority %q should be valid", p)
		}
	}
	if TicketPriority("urgent").Valid() {
		t.Error("priority \"urgent\" should not be valid")
	}
}

func TestContactMethodValid(t *testing.T) {
	for _, m := range []ContactMethod{ContactMethodPhone, ContactMethodSMS, ContactMethodWhatsApp, ContactMethodEmail} {
		if !m.Valid() {
			t.Errorf("contact method %q should be valid", m)
		}
	}
	if ContactMethod("fax").Valid() {
		t.Error("contact method \"fax\" should not be valid")
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("category %q should be valid", c)
		}
	}
	if ValidCategory("Potholes") {
		t.Error("unknown category accepted")
	}
	if ValidCategory("infrastructure") {
		t.Error("category match must be case sensitive")
	}
}

func TestTicketReference(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"uuid", "8f14e45f-ceea-467f-ab37-0be664e01a9b", "8F14E45F"},
		{"short id", "abc", "ABC"},
		{"exactly eight", "abcd1234", "ABCD1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := Ticket{ID: tt.id}
			if got := ticket.Reference(); got != tt.want {
				t.Errorf("Reference() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayStatus(t *testing.T) {
	tests := []struct {
		status TicketStatus
		want   string
	}{
		{TicketStatusInProgress, "In Progress"},
		{TicketStatusPending, "Pending"},
		{TicketStatusResolved, "Resolved"},
		{TicketStatusCanceled, "Canceled"},
	}

	for _, tt := range tests {
		if got := DisplayStatus(tt.status); got != tt.want {
			t.Errorf("DisplayStatus(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ijwiryacu/report-service/internal/domain"
)

// TicketFilter captures dashboard listing parameters. Nil fields leave the
// corresponding column unconstrained.
type TicketFilter struct {
	Status   *domain.TicketStatus
	Category *string
	Priority *domain.TicketPriority
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus, notes *string) (*domain.Ticket, error)
	CountByStatus(ctx context.Context) (map[domain.TicketStatus]int, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, title, description, category, location, priority, status,
               contact, contact_method, reporter_name, admin_notes,
               created_at, updated_at, resolved_at`

// Create inserts a new ticket. Status is always stored as pending and
// created_at is assigned by the store, regardless of what the caller set.
func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO support_tickets (title, description, category, location, priority, contact, contact_method, reporter_name)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, status, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Category,
		ticket.Location,
		ticket.Priority,
		ticket.Contact,
		ticket.ContactMethod,
		ticket.ReporterName,
	).Scan(&ticket.ID, &ticket.Status, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := fmt.Sprintf(`SELECT %s FROM support_tickets WHERE id=$1`, ticketColumns)

	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(ticketFields(&ticket)...); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// List returns tickets ordered by creation time, most recent first.
func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		clauses = append(clauses, fmt.Sprintf("priority=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM support_tickets WHERE %s ORDER BY created_at DESC`,
		ticketColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

// UpdateStatus applies a status change. updated_at is always refreshed;
// resolved_at is stamped only when the new status is resolved and is left
// untouched otherwise. Provided notes replace admin_notes.
func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus, notes *string) (*domain.Ticket, error) {
	query := fmt.Sprintf(`
        UPDATE support_tickets
        SET status=$1,
            admin_notes=COALESCE($2, admin_notes),
            updated_at=NOW(),
            resolved_at=CASE WHEN $1='resolved' THEN NOW() ELSE resolved_at END
        WHERE id=$3
        RETURNING %s`, ticketColumns)

	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, status, notes, id).Scan(ticketFields(&ticket)...); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// CountByStatus returns per-status ticket counts via a single aggregate query.
func (r *ticketRepository) CountByStatus(ctx context.Context) (map[domain.TicketStatus]int, error) {
	const query = `SELECT status, COUNT(*) FROM support_tickets GROUP BY status`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.TicketStatus]int)
	for rows.Next() {
		var status domain.TicketStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func ticketFields(t *domain.Ticket) []any {
	return []any{
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Category,
		&t.Location,
		&t.Priority,
		&t.Status,
		&t.Contact,
		&t.ContactMethod,
		&t.ReporterName,
		&t.AdminNotes,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.ResolvedAt,
	}
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(ticketFields(&ticket)...); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

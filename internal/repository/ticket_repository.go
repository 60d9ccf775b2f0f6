package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// TicketFilter captures listing parameters.
type TicketFilter struct {
	RequesterID *int64
}

// TicketPatch carries the mutable content fields of a ticket. Nil fields
// are left untouched; an all-nil patch still refreshes updated_at.
type TicketPatch struct {
	Title       *string
	Description *string
}

// TicketRepository encapsulates ticket persistence. Status and field
// updates are single statements so concurrent writers serialize on the row
// commit and the last writer wins.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error)
	UpdateFields(ctx context.Context, id int64, patch TicketPatch) (*domain.Ticket, error)
}

type ticketRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewTicketRepository instantiates a Postgres-backed repository.
func NewTicketRepository(pool *pgxpool.Pool, timeout time.Duration) TicketRepository {
	return &ticketRepository{pool: pool, timeout: timeout}
}

const ticketColumns = `id, titulo, descricao, status, setor_destino_id, solicitante_id, created_at, updated_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `
        INSERT INTO chamado (titulo, descricao, status, setor_destino_id, solicitante_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, status, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.SectorID,
		ticket.RequesterID,
	).Scan(&ticket.ID, &ticket.Status, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM chamado WHERE id=$1`, ticketColumns)
	return scanTicketRow(r.pool.QueryRow(ctx, query, id))
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM chamado`, ticketColumns)
	args := []any{}
	if filter.RequesterID != nil {
		args = append(args, *filter.RequesterID)
		query += ` WHERE solicitante_id=$1`
	}
	// one ordering policy for every listing: newest first
	query += ` ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := fmt.Sprintf(`
        UPDATE chamado SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING %s`, ticketColumns)
	return scanTicketRow(r.pool.QueryRow(ctx, query, status, id))
}

func (r *ticketRepository) UpdateFields(ctx context.Context, id int64, patch TicketPatch) (*domain.Ticket, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := fmt.Sprintf(`
        UPDATE chamado SET titulo=COALESCE($1, titulo), descricao=COALESCE($2, descricao), updated_at=NOW()
        WHERE id=$3
        RETURNING %s`, ticketColumns)
	return scanTicketRow(r.pool.QueryRow(ctx, query, patch.Title, patch.Description, id))
}

func scanTicketRow(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.SectorID,
		&ticket.RequesterID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Title,
			&ticket.Description,
			&ticket.Status,
			&ticket.SectorID,
			&ticket.RequesterID,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets. The wire literals
// follow the Portuguese deployment standard.
type TicketStatus string

const (
	TicketStatusOpen             TicketStatus = "Aberto"
	TicketStatusInProgress       TicketStatus = "Em Andamento"
	TicketStatusAwaitingResponse TicketStatus = "Aguardando Resposta"
	TicketStatusResolved         TicketStatus = "Resolvido"
	TicketStatusClosed           TicketStatus = "Fechado"
)

// AllowedStatuses returns the closed set of canonical status values in
// display order.
func AllowedStatuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusOpen,
		TicketStatusInProgress,
		TicketStatusAwaitingResponse,
		TicketStatusResolved,
		TicketStatusClosed,
	}
}

// Ticket is the aggregate for helpdesk requests. RequesterID and SectorID
// are immutable after creation; UpdatedAt is refreshed on every mutation.
type Ticket struct {
	ID          int64
	Title       string
	Description string
	Status      TicketStatus
	SectorID    int64
	RequesterID int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

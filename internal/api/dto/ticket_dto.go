package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CreateTicketRequest payload. A status field, if sent, is ignored;
// tickets always open as Aberto.
type CreateTicketRequest struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	SectorID    int64  `json:"setor_destino_id"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateTicketRequest carries a partial edit.
type UpdateTicketRequest struct {
	Title       *string `json:"titulo"`
	Description *string `json:"descricao"`
}

// TicketResponse is the wire shape of a ticket.
type TicketResponse struct {
	ID          int64               `json:"id"`
	Title       string              `json:"titulo"`
	Description string              `json:"descricao"`
	Status      domain.TicketStatus `json:"status"`
	SectorID    int64               `json:"setor_destino_id"`
	RequesterID int64               `json:"solicitante_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreateCommentRequest payload. autor_id is intentionally absent: the
// author is always the token subject.
type CreateCommentRequest struct {
	Message string `json:"mensagem"`
}

// CommentResponse is the wire shape of a thread comment.
type CommentResponse struct {
	ID        int64     `json:"id"`
	TicketID  int64     `json:"chamado_id"`
	AuthorID  int64     `json:"autor_id"`
	Message   string    `json:"mensagem"`
	CreatedAt time.Time `json:"created_at"`
}

// FromTicket maps a domain ticket to its response shape.
func FromTicket(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		SectorID:    ticket.SectorID,
		RequesterID: ticket.RequesterID,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}
}

// FromTickets maps a slice of tickets.
func FromTickets(tickets []domain.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, FromTicket(&tickets[i]))
	}
	return out
}

// FromComment maps a domain comment to its response shape.
func FromComment(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		TicketID:  comment.TicketID,
		AuthorID:  comment.AuthorID,
		Message:   comment.Message,
		CreatedAt: comment.CreatedAt,
	}
}

// FromComments maps a slice of comments.
func FromComments(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, FromComment(&comments[i]))
	}
	return out
}

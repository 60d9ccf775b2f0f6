package events

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventCommentAdded        EventType = "comment_added"
	EventUserRegistered      EventType = "user_registered"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id,omitempty"`
	ActorID   int64       `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	SectorID int64  `json:"setor_destino_id"`
	Title    string `json:"titulo"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	NewStatus domain.TicketStatus `json:"new_status"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID      int64  `json:"comment_id"`
	AuthorID       int64  `json:"autor_id"`
	MessagePreview string `json:"message_preview"`
}

// UserRegisteredPayload carries the identity attributes mirrored into the
// directory.
type UserRegisteredPayload struct {
	Name     string      `json:"nome"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	SectorID int64       `json:"setor_id"`
	Title    string      `json:"cargo"`
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/workflow"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// ListScope selects between the full listing and the caller's own tickets.
type ListScope string

const (
	ScopeAll  ListScope = "all"
	ScopeMine ListScope = "mine"
)

// TicketService coordinates the ticket lifecycle and its comment thread.
// Every mutation passes the workflow gate before anything is persisted.
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

// CreateTicketInput describes the client-controlled creation payload. Any
// status value the client supplies is discarded; tickets always start Open.
type CreateTicketInput struct {
	Title       string
	Description string
	SectorID    int64
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		comments:   deps.CommentRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create validates and persists a new ticket. The requester is always the
// verified principal, never a client-supplied id.
func (s *TicketService) Create(ctx context.Context, principal *domain.Principal, input CreateTicketInput) (*domain.Ticket, error) {
	fields := workflow.NewTicketInput{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		SectorID:    input.SectorID,
		RequesterID: principal.SubjectID,
	}
	if err := workflow.ValidateNewTicket(fields); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		Title:       fields.Title,
		Description: fields.Description,
		Status:      workflow.InitialStatus(),
		SectorID:    fields.SectorID,
		RequesterID: fields.RequesterID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  principal.SubjectID,
		Payload: events.TicketCreatedPayload{
			SectorID: ticket.SectorID,
			Title:    ticket.Title,
		},
	})
	return ticket, nil
}

// Get fetches a single ticket.
func (s *TicketService) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("chamado")
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// List returns tickets, newest first. ScopeMine restricts the listing to
// tickets the principal opened.
func (s *TicketService) List(ctx context.Context, principal *domain.Principal, scope ListScope) ([]domain.Ticket, error) {
	filter := repository.TicketFilter{}
	if scope == ScopeMine {
		filter.RequesterID = &principal.SubjectID
	}
	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// UpdateStatus moves a ticket to a new status. The target only has to be a
// member of the canonical set; the update itself is one statement so
// concurrent writers settle on the last commit.
func (s *TicketService) UpdateStatus(ctx context.Context, principal *domain.Principal, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	if err := workflow.ValidateStatus(status); err != nil {
		return nil, err
	}
	ticket, err := s.tickets.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("chamado")
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		ActorID:  principal.SubjectID,
		Payload: events.TicketStatusChangedPayload{
			NewStatus: ticket.Status,
		},
	})
	return ticket, nil
}

// UpdateFields applies a partial edit to title and description. An empty
// patch is not an error; the updated timestamp still refreshes.
func (s *TicketService) UpdateFields(ctx context.Context, principal *domain.Principal, id int64, patch repository.TicketPatch) (*domain.Ticket, error) {
	ticket, err := s.tickets.UpdateFields(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("chamado")
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// AddComment appends a comment to an existing ticket. The author is the
// verified principal; the parent ticket is checked before any write.
func (s *TicketService) AddComment(ctx context.Context, principal *domain.Principal, ticketID int64, message string) (*domain.Comment, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.NewEmptyMessage("mensagem é obrigatória")
	}

	if _, err := s.Get(ctx, ticketID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TicketID: ticketID,
		AuthorID: principal.SubjectID,
		Message:  message,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventCommentAdded,
		TicketID: ticketID,
		ActorID:  principal.SubjectID,
		Payload: events.CommentAddedPayload{
			CommentID:      comment.ID,
			AuthorID:       comment.AuthorID,
			MessagePreview: stringPreview(comment.Message, 120),
		},
	})
	return comment, nil
}

// ListComments returns a ticket's thread in chronological (ascending id)
// order.
func (s *TicketService) ListComments(ctx context.Context, ticketID int64) ([]domain.Comment, error) {
	if _, err := s.Get(ctx, ticketID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return comments, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// stringPreview truncates on rune boundaries so accented text never ends
// in a broken byte sequence.
func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

package workflow

import (
	"strings"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// The workflow package is the pure gate consulted before every ticket
// mutation. It holds no state of its own.

// AllowedStatusStrings returns the canonical set as plain strings for
// error payloads.
func AllowedStatusStrings() []string {
	allowed := domain.AllowedStatuses()
	out := make([]string, len(allowed))
	for i, s := range allowed {
		out[i] = string(s)
	}
	return out
}

// ValidateStatus checks exact, case-sensitive membership in the canonical
// status set.
func ValidateStatus(status domain.TicketStatus) error {
	for _, candidate := range domain.AllowedStatuses() {
		if status == candidate {
			return nil
		}
	}
	return apperrors.NewInvalidStatus("status inválido", AllowedStatusStrings())
}

// ValidateTransition accepts any target inside the closed set, from any
// current status. The transition graph is fully connected.
func ValidateTransition(current, next domain.TicketStatus) error {
	return ValidateStatus(next)
}

// NewTicketInput carries the client-controlled fields of a creation request.
type NewTicketInput struct {
	Title       string
	Description string
	SectorID    int64
	RequesterID int64
}

// ValidateNewTicket requires title, description, destination sector and
// requester to all be present.
func ValidateNewTicket(input NewTicketInput) error {
	missing := []string{}
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "titulo")
	}
	if strings.TrimSpace(input.Description) == "" {
		missing = append(missing, "descricao")
	}
	if input.SectorID == 0 {
		missing = append(missing, "setor_destino_id")
	}
	if input.RequesterID == 0 {
		missing = append(missing, "solicitante_id")
	}
	if len(missing) > 0 {
		return apperrors.NewMissingField("campos obrigatórios faltando", map[string]any{
			"fields": missing,
		})
	}
	return nil
}

// InitialStatus is the status every ticket starts in, regardless of any
// status value present in the creation payload.
func InitialStatus() domain.TicketStatus {
	return domain.TicketStatusOpen
}

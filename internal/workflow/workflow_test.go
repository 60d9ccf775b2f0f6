package workflow

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func TestValidateStatusAcceptsCanonicalSet(t *testing.T) {
	for _, status := range domain.AllowedStatuses() {
		if err := ValidateStatus(status); err != nil {
			t.Errorf("ValidateStatus(%q) = %v, want nil", status, err)
		}
	}
}

func TestValidateStatusRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name   string
		status domain.TicketStatus
	}{
		{name: "unknown value", status: "Cancelado"},
		{name: "lowercase variant", status: "aberto"},
		{name: "uppercase variant", status: "ABERTO"},
		{name: "english equivalent", status: "Open"},
		{name: "empty", status: ""},
		{name: "padded", status: " Aberto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatus(tt.status)
			if err == nil {
				t.Fatalf("ValidateStatus(%q) = nil, want error", tt.status)
			}

			var domainErr *apperrors.DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("error is %T, want *DomainError", err)
			}
			if domainErr.Code != "INVALID_STATUS" {
				t.Errorf("code = %q, want INVALID_STATUS", domainErr.Code)
			}
			allowed, ok := domainErr.Details["allowed"].([]string)
			if !ok {
				t.Fatalf("details missing allowed list: %#v", domainErr.Details)
			}
			want := []string{"Aberto", "Em Andamento", "Aguardando Resposta", "Resolvido", "Fechado"}
			if !reflect.DeepEqual(allowed, want) {
				t.Errorf("allowed = %v, want %v", allowed, want)
			}
		})
	}
}

func TestValidateTransitionIsPermissiveWithinSet(t *testing.T) {
	statuses := domain.AllowedStatuses()
	for _, current := range statuses {
		for _, next := range statuses {
			if err := ValidateTransition(current, next); err != nil {
				t.Errorf("ValidateTransition(%q, %q) = %v, want nil", current, next, err)
			}
		}
	}

	if err := ValidateTransition(domain.TicketStatusOpen, "Cancelado"); err == nil {
		t.Error("ValidateTransition to unknown status = nil, want error")
	}
}

func TestValidateNewTicket(t *testing.T) {
	valid := NewTicketInput{
		Title:       "Erro ao logar no sistema",
		Description: "Usuário não consegue autenticar com credenciais válidas",
		SectorID:    1,
		RequesterID: 42,
	}

	tests := []struct {
		name        string
		mutate      func(in *NewTicketInput)
		wantMissing bool
	}{
		{name: "all fields present", mutate: func(in *NewTicketInput) {}, wantMissing: false},
		{name: "missing title", mutate: func(in *NewTicketInput) { in.Title = "" }, wantMissing: true},
		{name: "blank title", mutate: func(in *NewTicketInput) { in.Title = "   " }, wantMissing: true},
		{name: "missing description", mutate: func(in *NewTicketInput) { in.Description = "" }, wantMissing: true},
		{name: "missing sector", mutate: func(in *NewTicketInput) { in.SectorID = 0 }, wantMissing: true},
		{name: "missing requester", mutate: func(in *NewTicketInput) { in.RequesterID = 0 }, wantMissing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			err := ValidateNewTicket(input)
			if !tt.wantMissing {
				if err != nil {
					t.Fatalf("ValidateNewTicket() = %v, want nil", err)
				}
				return
			}
			var domainErr *apperrors.DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("error is %T, want *DomainError", err)
			}
			if domainErr.Code != "MISSING_FIELD" {
				t.Errorf("code = %q, want MISSING_FIELD", domainErr.Code)
			}
		})
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != domain.TicketStatusOpen {
		t.Errorf("InitialStatus() = %q, want %q", got, domain.TicketStatusOpen)
	}
}

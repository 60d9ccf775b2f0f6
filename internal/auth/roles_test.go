package auth

import (
	"errors"
	"testing"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func TestAuthorize(t *testing.T) {
	support := &domain.Principal{SubjectID: 7, Role: domain.RoleSupport}

	tests := []struct {
		name      string
		principal *domain.Principal
		allowed   []domain.Role
		wantCode  string
	}{
		{
			name:      "role in allow-list",
			principal: support,
			allowed:   []domain.Role{domain.RoleAdmin, domain.RoleSupport},
		},
		{
			name:      "role not in allow-list",
			principal: support,
			allowed:   []domain.Role{domain.RoleAdmin},
			wantCode:  "FORBIDDEN",
		},
		{
			name:      "empty allow-list admits any principal",
			principal: &domain.Principal{SubjectID: 1, Role: domain.RoleUser},
		},
		{
			name:     "missing principal is unauthenticated, not forbidden",
			allowed:  []domain.Role{domain.RoleAdmin},
			wantCode: "UNAUTHENTICATED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.allowed...)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Authorize() = %v, want nil", err)
				}
				return
			}
			var domainErr *apperrors.DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("error is %T, want *DomainError", err)
			}
			if domainErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", domainErr.Code, tt.wantCode)
			}
		})
	}
}

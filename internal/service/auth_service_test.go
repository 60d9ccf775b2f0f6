package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

func newTestAuthService(dispatcher events.Dispatcher) *AuthService {
	return NewAuthService(config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            4, // keep the test fast
	}, AuthDependencies{
		UserRepo:   repository.NewMemoryUserRepository(),
		Dispatcher: dispatcher,
	})
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Name:     "May",
		Email:    "May@Example.com",
		Password: "s3nh4-f0rte",
		Role:     domain.RoleSupport,
		SectorID: 1,
		Title:    "QA",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Email != "may@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "s3nh4-f0rte" {
		t.Error("password stored in plaintext")
	}

	result, err := svc.Login(ctx, "may@example.com", "s3nh4-f0rte")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	principal, err := svc.TokenManager().ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if principal.SubjectID != user.ID || principal.Role != domain.RoleSupport || principal.SectorID != 1 || principal.Title != "QA" {
		t.Errorf("claims = %+v, want identity of %+v", principal, user)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		input    RegisterInput
		wantCode string
	}{
		{
			name:     "missing email",
			input:    RegisterInput{Name: "May", Password: "x"},
			wantCode: "MISSING_FIELD",
		},
		{
			name:     "missing password",
			input:    RegisterInput{Name: "May", Email: "may@example.com"},
			wantCode: "MISSING_FIELD",
		},
		{
			name:     "unknown role",
			input:    RegisterInput{Name: "May", Email: "may@example.com", Password: "x", Role: "ROOT"},
			wantCode: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(nil)
	ctx := context.Background()

	input := RegisterInput{Name: "May", Email: "may@example.com", Password: "x"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	_, err := svc.Register(ctx, input)
	assertCode(t, err, "CONFLICT")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Name: "May", Email: "may@example.com", Password: "correta"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := svc.Login(ctx, "may@example.com", "errada")
	assertCode(t, err, "UNAUTHENTICATED")

	// unknown email is indistinguishable from a wrong password
	_, err = svc.Login(ctx, "ghost@example.com", "qualquer")
	assertCode(t, err, "UNAUTHENTICATED")
}

func TestRegisterMirrorsEmployeeIntoDirectory(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	employees := repository.NewMemoryEmployeeRepository()

	directory := NewDirectoryService(DirectoryDependencies{
		SectorRepo:   repository.NewMemorySectorRepository(),
		EmployeeRepo: employees,
		Dispatcher:   dispatcher,
		Logger:       zap.NewNop(),
	})
	directory.RegisterHandlers()

	svc := newTestAuthService(dispatcher)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Name:     "May",
		Email:    "may@example.com",
		Password: "x",
		SectorID: 1,
		Title:    "QA",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	mirrored, err := employees.GetByEmail(ctx, "may@example.com")
	if err != nil {
		t.Fatalf("employee not mirrored: %v", err)
	}
	if mirrored.SectorID != 1 || mirrored.Title != "QA" {
		t.Errorf("mirrored entry = %+v, want sector 1 / cargo QA", mirrored)
	}

	// duplicate delivery finds the existing entry and stops
	if _, err := svc.Register(ctx, RegisterInput{Name: "Other", Email: "other@example.com", Password: "x"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	all, err := employees.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("directory has %d entries, want 2", len(all))
	}
}

func TestDirectoryMirrorFailureDoesNotFailRegistration(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	// no sector/employee repos wired through a failing stub
	directory := NewDirectoryService(DirectoryDependencies{
		SectorRepo:   repository.NewMemorySectorRepository(),
		EmployeeRepo: failingEmployeeRepo{},
		Dispatcher:   dispatcher,
		Logger:       zap.NewNop(),
	})
	directory.RegisterHandlers()

	svc := newTestAuthService(dispatcher)
	if _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "May",
		Email:    "may@example.com",
		Password: "x",
	}); err != nil {
		t.Fatalf("Register() error = %v, want nil despite mirror failure", err)
	}
}

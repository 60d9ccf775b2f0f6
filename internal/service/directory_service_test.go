package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

type failingEmployeeRepo struct{}

func (failingEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	return errors.New("directory unavailable")
}

func (failingEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return nil, pgx.ErrNoRows
}

func (failingEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	return nil, errors.New("directory unavailable")
}

func newTestDirectoryService() *DirectoryService {
	return NewDirectoryService(DirectoryDependencies{
		SectorRepo:   repository.NewMemorySectorRepository(),
		EmployeeRepo: repository.NewMemoryEmployeeRepository(),
		Logger:       zap.NewNop(),
	})
}

func TestCreateSector(t *testing.T) {
	svc := newTestDirectoryService()
	ctx := context.Background()

	sector, err := svc.CreateSector(ctx, "  TI  ")
	if err != nil {
		t.Fatalf("CreateSector() error = %v", err)
	}
	if sector.Name != "TI" {
		t.Errorf("Name = %q, want TI", sector.Name)
	}

	_, err = svc.CreateSector(ctx, "")
	assertCode(t, err, "MISSING_FIELD")

	_, err = svc.CreateSector(ctx, "ti")
	assertCode(t, err, "CONFLICT")

	sectors, err := svc.ListSectors(ctx)
	if err != nil {
		t.Fatalf("ListSectors() error = %v", err)
	}
	if len(sectors) != 1 {
		t.Errorf("len(sectors) = %d, want 1", len(sectors))
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := newTestDirectoryService()
	ctx := context.Background()

	tests := []struct {
		name     string
		employee domain.Employee
		wantCode string
	}{
		{name: "missing name", employee: domain.Employee{Email: "a@b.com", SectorID: 1}, wantCode: "MISSING_FIELD"},
		{name: "missing email", employee: domain.Employee{Name: "May", SectorID: 1}, wantCode: "MISSING_FIELD"},
		{name: "missing sector", employee: domain.Employee{Name: "May", Email: "a@b.com"}, wantCode: "MISSING_FIELD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEmployee(ctx, &tt.employee)
			assertCode(t, err, tt.wantCode)
		})
	}

	created, err := svc.CreateEmployee(ctx, &domain.Employee{Name: "May", Email: "May@Example.com", SectorID: 1, Title: "QA"})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}
	if created.Email != "may@example.com" {
		t.Errorf("email not normalized: %q", created.Email)
	}
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// DirectoryService manages sectors and the employee directory. It also
// mirrors newly registered users into the directory; that sync is
// best-effort and failures are logged, never surfaced.
type DirectoryService struct {
	sectors    repository.SectorRepository
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// DirectoryDependencies bundles collaborators for the directory service.
type DirectoryDependencies struct {
	SectorRepo   repository.SectorRepository
	EmployeeRepo repository.EmployeeRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewDirectoryService constructs the service.
func NewDirectoryService(deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		sectors:    deps.SectorRepo,
		employees:  deps.EmployeeRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// RegisterHandlers subscribes the mirroring handler.
func (s *DirectoryService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventUserRegistered, s.handleUserRegistered)
}

// ListSectors returns all sectors.
func (s *DirectoryService) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	sectors, err := s.sectors.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return sectors, nil
}

// CreateSector registers a new sector.
func (s *DirectoryService) CreateSector(ctx context.Context, name string) (*domain.Sector, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewMissingField("nome é obrigatório", nil)
	}
	sector := &domain.Sector{Name: name}
	if err := s.sectors.Create(ctx, sector); err != nil {
		return nil, apperrors.MapError(err)
	}
	return sector, nil
}

// ListEmployees returns all directory entries.
func (s *DirectoryService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return employees, nil
}

// CreateEmployee registers a directory entry directly.
func (s *DirectoryService) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	employee.Name = strings.TrimSpace(employee.Name)
	employee.Email = strings.ToLower(strings.TrimSpace(employee.Email))
	if employee.Name == "" || employee.Email == "" || employee.SectorID == 0 {
		return nil, apperrors.NewMissingField("nome, email e setor_id são obrigatórios", nil)
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, apperrors.MapError(err)
	}
	return employee, nil
}

// handleUserRegistered mirrors a freshly registered user into the
// directory. At-least-once: a duplicate delivery finds the existing entry
// and stops.
func (s *DirectoryService) handleUserRegistered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserRegisteredPayload)
	if !ok {
		return nil
	}

	if _, err := s.employees.GetByEmail(ctx, payload.Email); err == nil {
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Warn("directory mirror lookup failed", zap.String("email", payload.Email), zap.Error(err))
		return nil
	}

	employee := &domain.Employee{
		Name:     payload.Name,
		Email:    payload.Email,
		SectorID: payload.SectorID,
		Title:    payload.Title,
	}
	if _, err := s.CreateEmployee(ctx, employee); err != nil {
		s.logger.Warn("directory mirror failed", zap.String("email", payload.Email), zap.Error(err))
	}
	return nil
}

package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// In-memory implementations of the repository interfaces. They back the
// service when no POSTGRES_DSN is configured and every service-level test.
// Absent rows are reported as pgx.ErrNoRows so error mapping stays uniform
// across backends.

// MemoryTicketRepository keeps tickets behind a mutex with the same
// per-row last-writer-wins semantics as a single SQL statement.
type MemoryTicketRepository struct {
	mu      sync.Mutex
	nextID  int64
	tickets map[int64]domain.Ticket
}

// NewMemoryTicketRepository creates an empty store.
func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{nextID: 1, tickets: make(map[int64]domain.Ticket)}
}

func (r *MemoryTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	ticket.ID = r.nextID
	r.nextID++
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *MemoryTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ticket, nil
}

func (r *MemoryTicketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Ticket
	for _, ticket := range r.tickets {
		if filter.RequesterID != nil && ticket.RequesterID != *filter.RequesterID {
			continue
		}
		result = append(result, ticket)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *MemoryTicketRepository) UpdateStatus(ctx context.Context, id int64, status domain.TicketStatus) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	ticket.Status = status
	ticket.UpdatedAt = time.Now()
	r.tickets[id] = ticket
	return &ticket, nil
}

func (r *MemoryTicketRepository) UpdateFields(ctx context.Context, id int64, patch TicketPatch) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.Title != nil {
		ticket.Title = *patch.Title
	}
	if patch.Description != nil {
		ticket.Description = *patch.Description
	}
	ticket.UpdatedAt = time.Now()
	r.tickets[id] = ticket
	return &ticket, nil
}

// MemoryCommentRepository stores comments, append-only.
type MemoryCommentRepository struct {
	mu       sync.Mutex
	nextID   int64
	comments []domain.Comment
}

// NewMemoryCommentRepository creates an empty store.
func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{nextID: 1}
}

func (r *MemoryCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = r.nextID
	r.nextID++
	comment.CreatedAt = time.Now()
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *MemoryCommentRepository) ListByTicket(ctx context.Context, ticketID int64) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Comment
	for _, comment := range r.comments {
		if comment.TicketID == ticketID {
			result = append(result, comment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MemorySectorRepository stores sectors.
type MemorySectorRepository struct {
	mu      sync.Mutex
	nextID  int64
	sectors map[int64]domain.Sector
}

// NewMemorySectorRepository creates an empty store.
func NewMemorySectorRepository() *MemorySectorRepository {
	return &MemorySectorRepository{nextID: 1, sectors: make(map[int64]domain.Sector)}
}

func (r *MemorySectorRepository) Create(ctx context.Context, sector *domain.Sector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.sectors {
		if strings.EqualFold(existing.Name, sector.Name) {
			return apperrors.NewConflict("setor já existe")
		}
	}
	sector.ID = r.nextID
	r.nextID++
	sector.CreatedAt = time.Now()
	r.sectors[sector.ID] = *sector
	return nil
}

func (r *MemorySectorRepository) GetByID(ctx context.Context, id int64) (*domain.Sector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sector, ok := r.sectors[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &sector, nil
}

func (r *MemorySectorRepository) List(ctx context.Context) ([]domain.Sector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Sector, 0, len(r.sectors))
	for _, sector := range r.sectors {
		result = append(result, sector)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MemoryEmployeeRepository stores directory employees.
type MemoryEmployeeRepository struct {
	mu        sync.Mutex
	nextID    int64
	employees map[int64]domain.Employee
}

// NewMemoryEmployeeRepository creates an empty store.
func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{nextID: 1, employees: make(map[int64]domain.Employee)}
}

func (r *MemoryEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if strings.EqualFold(existing.Email, employee.Email) {
			return apperrors.NewConflict("funcionário já existe")
		}
	}
	employee.ID = r.nextID
	r.nextID++
	employee.CreatedAt = time.Now()
	r.employees[employee.ID] = *employee
	return nil
}

func (r *MemoryEmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, employee := range r.employees {
		if strings.EqualFold(employee.Email, email) {
			result := employee
			return &result, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		result = append(result, employee)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MemoryUserRepository stores login credentials.
type MemoryUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
}

// NewMemoryUserRepository creates an empty store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: make(map[int64]domain.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.NewConflict("e-mail já cadastrado")
		}
	}
	now := time.Now()
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			result := user
			return &result, nil
		}
	}
	return nil, pgx.ErrNoRows
}

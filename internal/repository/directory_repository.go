package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// SectorRepository defines persistence access for sectors.
type SectorRepository interface {
	Create(ctx context.Context, sector *domain.Sector) error
	GetByID(ctx context.Context, id int64) (*domain.Sector, error)
	List(ctx context.Context) ([]domain.Sector, error)
}

// EmployeeRepository defines persistence access for directory employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}

type sectorRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewSectorRepository returns a Postgres-backed implementation.
func NewSectorRepository(pool *pgxpool.Pool, timeout time.Duration) SectorRepository {
	return &sectorRepository{pool: pool, timeout: timeout}
}

func (r *sectorRepository) Create(ctx context.Context, sector *domain.Sector) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `
        INSERT INTO setor (nome)
        VALUES ($1)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, sector.Name).Scan(&sector.ID, &sector.CreatedAt)
}

func (r *sectorRepository) GetByID(ctx context.Context, id int64) (*domain.Sector, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `SELECT id, nome, created_at FROM setor WHERE id=$1`
	var sector domain.Sector
	if err := r.pool.QueryRow(ctx, query, id).Scan(&sector.ID, &sector.Name, &sector.CreatedAt); err != nil {
		return nil, err
	}
	return &sector, nil
}

func (r *sectorRepository) List(ctx context.Context) ([]domain.Sector, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `SELECT id, nome, created_at FROM setor ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Sector
	for rows.Next() {
		var sector domain.Sector
		if err := rows.Scan(&sector.ID, &sector.Name, &sector.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, sector)
	}
	return result, rows.Err()
}

type employeeRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool, timeout time.Duration) EmployeeRepository {
	return &employeeRepository{pool: pool, timeout: timeout}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `
        INSERT INTO funcionario (nome, email, setor_id, cargo)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		employee.Name,
		employee.Email,
		employee.SectorID,
		employee.Title,
	).Scan(&employee.ID, &employee.CreatedAt)
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `SELECT id, nome, email, setor_id, cargo, created_at FROM funcionario WHERE email=$1`
	var employee domain.Employee
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.SectorID,
		&employee.Title,
		&employee.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `SELECT id, nome, email, setor_id, cargo, created_at FROM funcionario ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.SectorID,
			&employee.Title,
			&employee.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

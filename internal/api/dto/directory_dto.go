package dto

import "github.com/spec-kit/helpdesk-service/internal/domain"

// CreateSectorRequest payload.
type CreateSectorRequest struct {
	Name string `json:"nome"`
}

// SectorResponse is the wire shape of a sector.
type SectorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// CreateEmployeeRequest payload.
type CreateEmployeeRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	SectorID int64  `json:"setor_id"`
	Title    string `json:"cargo"`
}

// EmployeeResponse is the wire shape of a directory entry.
type EmployeeResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	SectorID int64  `json:"setor_id"`
	Title    string `json:"cargo"`
}

// FromSector maps a sector.
func FromSector(sector *domain.Sector) SectorResponse {
	return SectorResponse{ID: sector.ID, Name: sector.Name}
}

// FromSectors maps a slice of sectors.
func FromSectors(sectors []domain.Sector) []SectorResponse {
	out := make([]SectorResponse, 0, len(sectors))
	for i := range sectors {
		out = append(out, FromSector(&sectors[i]))
	}
	return out
}

// FromEmployee maps a directory entry.
func FromEmployee(employee *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       employee.ID,
		Name:     employee.Name,
		Email:    employee.Email,
		SectorID: employee.SectorID,
		Title:    employee.Title,
	}
}

// FromEmployees maps a slice of directory entries.
func FromEmployees(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, FromEmployee(&employees[i]))
	}
	return out
}

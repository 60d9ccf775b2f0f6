package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// DirectoryHandler manages sector and employee endpoints.
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: directoryService}
}

// ListSectors GET /sectors.
func (h *DirectoryHandler) ListSectors(c *fiber.Ctx) error {
	sectors, err := h.service.ListSectors(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromSectors(sectors))
}

// CreateSector POST /sectors.
func (h *DirectoryHandler) CreateSector(c *fiber.Ctx) error {
	var req dto.CreateSectorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("payload inválido", nil)
	}
	sector, err := h.service.CreateSector(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.FromSector(sector))
}

// ListEmployees GET /employees.
func (h *DirectoryHandler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.service.ListEmployees(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromEmployees(employees))
}

// CreateEmployee POST /employees.
func (h *DirectoryHandler) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("payload inválido", nil)
	}
	employee, err := h.service.CreateEmployee(c.UserContext(), &domain.Employee{
		Name:     req.Name,
		Email:    req.Email,
		SectorID: req.SectorID,
		Title:    req.Title,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.FromEmployee(employee))
}

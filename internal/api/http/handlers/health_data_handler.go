package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/health-facility-service/internal/api/dto"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/service"
)

// HealthDataHandler exposes health-data report endpoints.
type HealthDataHandler struct {
	reports *service.HealthDataService
}

// NewHealthDataHandler constructs handler.
func NewHealthDataHandler(healthDataService *service.HealthDataService) *HealthDataHandler {
	return &HealthDataHandler{reports: healthDataService}
}

func toHealthDataResponse(report *domain.HealthData) dto.HealthDataResponse {
	return dto.HealthDataResponse{
		ID:           report.ID,
		FacilityID:   report.FacilityID,
		DepartmentID: report.DepartmentID,
		ReportedBy:   report.ReportedBy,
		Data:         report.Data,
		Status:       string(report.Status),
		DateOfReport: report.DateOfReport,
		IsActive:     report.IsActive,
		IsDeleted:    report.IsDeleted,
		CreatedAt:    report.CreatedAt,
		UpdatedAt:    report.UpdatedAt,
	}
}

// Create handles POST /api/v1/health-data.
func (h *HealthDataHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.CreateHealthDataRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	report, err := h.reports.Create(c.Context(), actor, service.CreateHealthDataInput{
		FacilityID:   req.FacilityID,
		DepartmentID: req.DepartmentID,
		Data:         req.Data,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toHealthDataResponse(report), "health data reported successfully")
}

// List handles GET /api/v1/health-data, optionally filtered by facility.
func (h *HealthDataHandler) List(c *fiber.Ctx) error {
	var (
		reports []domain.HealthData
		err     error
	)
	if facilityID := c.Query("facilityId"); facilityID != "" {
		reports, err = h.reports.ListByFacility(c.Context(), facilityID)
	} else {
		reports, err = h.reports.List(c.Context())
	}
	if err != nil {
		return err
	}
	result := make([]dto.HealthDataResponse, 0, len(reports))
	for i := range reports {
		result = append(result, toHealthDataResponse(&reports[i]))
	}
	return respond(c, http.StatusOK, result, "health data fetched successfully")
}

// Get handles GET /api/v1/health-data/:id.
func (h *HealthDataHandler) Get(c *fiber.Ctx) error {
	report, err := h.reports.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toHealthDataResponse(report), "health data fetched successfully")
}

// Update handles PATCH /api/v1/health-data/:id.
func (h *HealthDataHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateHealthDataRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.Update(c.Context(), c.Params("id"), domain.HealthDataUpdate{Data: req.Data})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toHealthDataResponse(report), "health data updated successfully")
}

// UpdateStatus handles PATCH /api/v1/health-data/:id/status.
func (h *HealthDataHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.UpdateHealthDataStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	report, err := h.reports.UpdateStatus(c.Context(), actor, c.Params("id"), domain.HealthDataStatus(req.Status))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toHealthDataResponse(report), "health data status updated successfully")
}

// Delete handles DELETE /api/v1/health-data/:id (soft delete).
func (h *HealthDataHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.reports.SoftDelete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "health data deleted successfully")
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/health-facility-service/internal/api/dto"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/service"
)

// OrgHandler exposes the containment-hierarchy endpoints: states, districts
// and departments.
type OrgHandler struct {
	org *service.OrgService
}

// NewOrgHandler constructs handler.
func NewOrgHandler(orgService *service.OrgService) *OrgHandler {
	return &OrgHandler{org: orgService}
}

func toStateResponse(state *domain.State) dto.StateResponse {
	return dto.StateResponse{
		ID:        state.ID,
		Name:      state.Name,
		IsActive:  state.IsActive,
		IsDeleted: state.IsDeleted,
		CreatedAt: state.CreatedAt,
		UpdatedAt: state.UpdatedAt,
	}
}

func toDistrictResponse(district *domain.District) dto.DistrictResponse {
	return dto.DistrictResponse{
		ID:        district.ID,
		Name:      district.Name,
		StateID:   district.StateID,
		IsActive:  district.IsActive,
		IsDeleted: district.IsDeleted,
		CreatedAt: district.CreatedAt,
		UpdatedAt: district.UpdatedAt,
	}
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:         dept.ID,
		Name:       dept.Name,
		FacilityID: dept.FacilityID,
		IsActive:   dept.IsActive,
		IsDeleted:  dept.IsDeleted,
		CreatedAt:  dept.CreatedAt,
		UpdatedAt:  dept.UpdatedAt,
	}
}

// CreateState handles POST /api/v1/states.
func (h *OrgHandler) CreateState(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.CreateStateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	state, err := h.org.CreateState(c.Context(), actor, req.Name)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toStateResponse(state), "state created successfully")
}

// ListStates handles GET /api/v1/states.
func (h *OrgHandler) ListStates(c *fiber.Ctx) error {
	states, err := h.org.ListStates(c.Context())
	if err != nil {
		return err
	}
	result := make([]dto.StateResponse, 0, len(states))
	for i := range states {
		result = append(result, toStateResponse(&states[i]))
	}
	return respond(c, http.StatusOK, result, "states fetched successfully")
}

// GetState handles GET /api/v1/states/:id.
func (h *OrgHandler) GetState(c *fiber.Ctx) error {
	state, err := h.org.GetStateByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toStateResponse(state), "state fetched successfully")
}

// UpdateState handles PATCH /api/v1/states/:id.
func (h *OrgHandler) UpdateState(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	state, err := h.org.UpdateState(c.Context(), actor, c.Params("id"), domain.StateUpdate{Name: req.Name})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toStateResponse(state), "state updated successfully")
}

// DeleteState handles DELETE /api/v1/states/:id (soft delete).
func (h *OrgHandler) DeleteState(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	if _, err := h.org.SoftDeleteState(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "state deleted successfully")
}

// CreateDistrict handles POST /api/v1/districts.
func (h *OrgHandler) CreateDistrict(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.CreateDistrictRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	district, err := h.org.CreateDistrict(c.Context(), actor, req.Name, req.StateID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toDistrictResponse(district), "district created successfully")
}

// ListDistricts handles GET /api/v1/districts, optionally filtered by state.
func (h *OrgHandler) ListDistricts(c *fiber.Ctx) error {
	var (
		districts []domain.District
		err       error
	)
	if stateID := c.Query("stateId"); stateID != "" {
		districts, err = h.org.ListDistrictsByState(c.Context(), stateID)
	} else {
		districts, err = h.org.ListDistricts(c.Context())
	}
	if err != nil {
		return err
	}
	result := make([]dto.DistrictResponse, 0, len(districts))
	for i := range districts {
		result = append(result, toDistrictResponse(&districts[i]))
	}
	return respond(c, http.StatusOK, result, "districts fetched successfully")
}

// GetDistrict handles GET /api/v1/districts/:id.
func (h *OrgHandler) GetDistrict(c *fiber.Ctx) error {
	district, err := h.org.GetDistrictByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toDistrictResponse(district), "district fetched successfully")
}

// UpdateDistrict handles PATCH /api/v1/districts/:id.
func (h *OrgHandler) UpdateDistrict(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.UpdateDistrictRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	district, err := h.org.UpdateDistrict(c.Context(), actor, c.Params("id"), domain.DistrictUpdate{
		Name:    req.Name,
		StateID: req.StateID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toDistrictResponse(district), "district updated successfully")
}

// DeleteDistrict handles DELETE /api/v1/districts/:id (soft delete).
func (h *OrgHandler) DeleteDistrict(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	if _, err := h.org.SoftDeleteDistrict(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "district deleted successfully")
}

// CreateDepartment handles POST /api/v1/departments.
func (h *OrgHandler) CreateDepartment(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.CreateDepartmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	dept, err := h.org.CreateDepartment(c.Context(), actor, req.Name, req.FacilityID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toDepartmentResponse(dept), "department created successfully")
}

// ListDepartments handles GET /api/v1/departments, optionally filtered by facility.
func (h *OrgHandler) ListDepartments(c *fiber.Ctx) error {
	var (
		departments []domain.Department
		err         error
	)
	if facilityID := c.Query("facilityId"); facilityID != "" {
		departments, err = h.org.ListDepartmentsByFacility(c.Context(), facilityID)
	} else {
		departments, err = h.org.ListDepartments(c.Context())
	}
	if err != nil {
		return err
	}
	result := make([]dto.DepartmentResponse, 0, len(departments))
	for i := range departments {
		result = append(result, toDepartmentResponse(&departments[i]))
	}
	return respond(c, http.StatusOK, result, "departments fetched successfully")
}

// GetDepartment handles GET /api/v1/departments/:id.
func (h *OrgHandler) GetDepartment(c *fiber.Ctx) error {
	dept, err := h.org.GetDepartmentByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toDepartmentResponse(dept), "department fetched successfully")
}

// UpdateDepartment handles PATCH /api/v1/departments/:id.
func (h *OrgHandler) UpdateDepartment(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.UpdateDepartmentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	dept, err := h.org.UpdateDepartment(c.Context(), actor, c.Params("id"), domain.DepartmentUpdate{Name: req.Name})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toDepartmentResponse(dept), "department updated successfully")
}

// DeleteDepartment handles DELETE /api/v1/departments/:id (soft delete).
func (h *OrgHandler) DeleteDepartment(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	if _, err := h.org.SoftDeleteDepartment(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "department deleted successfully")
}

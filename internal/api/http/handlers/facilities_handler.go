package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/health-facility-service/internal/api/dto"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/service"
)

// FacilitiesHandler exposes facility management endpoints.
type FacilitiesHandler struct {
	facilities *service.FacilityService
}

// NewFacilitiesHandler constructs handler.
func NewFacilitiesHandler(facilityService *service.FacilityService) *FacilitiesHandler {
	return &FacilitiesHandler{facilities: facilityService}
}

func toFacilityResponse(facility *domain.Facility) dto.FacilityResponse {
	return dto.FacilityResponse{
		ID:   facility.ID,
		Name: facility.Name,
		Address: dto.AddressPayload{
			State:   facility.Address.State,
			City:    facility.Address.City,
			Pincode: facility.Address.Pincode,
		},
		Type:       string(facility.Type),
		DistrictID: facility.DistrictID,
		IsActive:   facility.IsActive,
		IsDeleted:  facility.IsDeleted,
		CreatedAt:  facility.CreatedAt,
		UpdatedAt:  facility.UpdatedAt,
	}
}

// Create handles POST /api/v1/facilities.
func (h *FacilitiesHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.CreateFacilityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	facility, err := h.facilities.Create(c.Context(), actor, service.CreateFacilityInput{
		Name: req.Name,
		Address: domain.Address{
			State:   req.Address.State,
			City:    req.Address.City,
			Pincode: req.Address.Pincode,
		},
		Type:       domain.FacilityType(req.Type),
		DistrictID: req.DistrictID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, toFacilityResponse(facility), "facility created successfully")
}

// List handles GET /api/v1/facilities, optionally filtered by district.
func (h *FacilitiesHandler) List(c *fiber.Ctx) error {
	var (
		facilities []domain.Facility
		err        error
	)
	if districtID := c.Query("districtId"); districtID != "" {
		facilities, err = h.facilities.ListByDistrict(c.Context(), districtID)
	} else {
		facilities, err = h.facilities.List(c.Context())
	}
	if err != nil {
		return err
	}
	result := make([]dto.FacilityResponse, 0, len(facilities))
	for i := range facilities {
		result = append(result, toFacilityResponse(&facilities[i]))
	}
	return respond(c, http.StatusOK, result, "facilities fetched successfully")
}

// Get handles GET /api/v1/facilities/:id.
func (h *FacilitiesHandler) Get(c *fiber.Ctx) error {
	facility, err := h.facilities.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toFacilityResponse(facility), "facility fetched successfully")
}

// Update handles PATCH /api/v1/facilities/:id.
func (h *FacilitiesHandler) Update(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	var req dto.UpdateFacilityRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	upd := domain.FacilityUpdate{
		Name:           req.Name,
		AddressState:   req.AddressState,
		AddressCity:    req.AddressCity,
		AddressPincode: req.AddressPincode,
		DistrictID:     req.DistrictID,
	}
	if req.Type != nil {
		facilityType := domain.FacilityType(*req.Type)
		upd.Type = &facilityType
	}

	facility, err := h.facilities.Update(c.Context(), actor, c.Params("id"), upd)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toFacilityResponse(facility), "facility updated successfully")
}

// Delete handles DELETE /api/v1/facilities/:id (soft delete).
func (h *FacilitiesHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	if _, err := h.facilities.SoftDelete(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "facility deleted successfully")
}

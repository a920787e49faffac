package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/health-facility-service/internal/auth"
	"github.com/spec-kit/health-facility-service/internal/domain"
	"github.com/spec-kit/health-facility-service/internal/events"
	"github.com/spec-kit/health-facility-service/internal/repository"
	apperrors "github.com/spec-kit/health-facility-service/pkg/util"
)

// HealthDataService manages health-data reports.
type HealthDataService struct {
	reports     repository.HealthDataRepository
	facilities  repository.FacilityRepository
	departments repository.DepartmentRepository
	dispatcher  events.Dispatcher
}

// NewHealthDataService builds the service. The dispatcher may be nil.
func NewHealthDataService(
	reports repository.HealthDataRepository,
	facilities repository.FacilityRepository,
	departments repository.DepartmentRepository,
	dispatcher events.Dispatcher,
) *HealthDataService {
	return &HealthDataService{
		reports:     reports,
		facilities:  facilities,
		departments: departments,
		dispatcher:  dispatcher,
	}
}

// CreateHealthDataInput carries the fields for report submission.
type CreateHealthDataInput struct {
	FacilityID   string
	DepartmentID string
	Data         map[string]any
}

// Create submits a new report. Any role may report; the target facility and
// department must pass the lifecycle gate. Status starts as Pending.
func (s *HealthDataService) Create(ctx context.Context, actor *domain.User, in CreateHealthDataInput) (*domain.HealthData, error) {
	if len(in.Data) == 0 {
		return nil, apperrors.NewValidationError("data payload is required", nil)
	}
	if _, err := loadGuarded(ctx, in.FacilityID, s.facilities.GetByID); err != nil {
		return nil, err
	}
	if _, err := loadGuarded(ctx, in.DepartmentID, s.departments.GetByID); err != nil {
		return nil, err
	}

	report := &domain.HealthData{
		FacilityID:   in.FacilityID,
		DepartmentID: in.DepartmentID,
		ReportedBy:   actor.ID,
		Data:         in.Data,
		Status:       domain.HealthDataStatusPending,
		DateOfReport: time.Now(),
		IsActive:     true,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:           uuid.NewString(),
		Type:         events.EventHealthDataReported,
		HealthDataID: report.ID,
		Actor:        events.Actor{UserID: actor.ID, Role: actor.Role},
		Timestamp:    time.Now(),
		Payload: events.HealthDataReportedPayload{
			FacilityID:   report.FacilityID,
			DepartmentID: report.DepartmentID,
		},
	})
	return report, nil
}

// List returns active, non-deleted reports.
func (s *HealthDataService) List(ctx context.Context) ([]domain.HealthData, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return reports, nil
}

// ListByFacility returns a facility's active reports.
func (s *HealthDataService) ListByFacility(ctx context.Context, facilityID string) ([]domain.HealthData, error) {
	if err := validateID(facilityID); err != nil {
		return nil, err
	}
	reports, err := s.reports.ListByFacility(ctx, facilityID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return reports, nil
}

// GetByID fetches a report after the lifecycle gate.
func (s *HealthDataService) GetByID(ctx context.Context, id string) (*domain.HealthData, error) {
	return loadGuarded(ctx, id, s.reports.GetByID)
}

// Update replaces the report payload after the lifecycle gate.
func (s *HealthDataService) Update(ctx context.Context, id string, upd domain.HealthDataUpdate) (*domain.HealthData, error) {
	if _, err := loadGuarded(ctx, id, s.reports.GetByID); err != nil {
		return nil, err
	}
	report, err := s.reports.Update(ctx, id, upd)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return report, nil
}

// UpdateStatus moves a report to Approved or Rejected. Reviewer roles only.
func (s *HealthDataService) UpdateStatus(ctx context.Context, actor *domain.User, id string, status domain.HealthDataStatus) (*domain.HealthData, error) {
	if err := auth.RequireRole(actor.Role, auth.HealthDataReviewers...); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}
	current, err := loadGuarded(ctx, id, s.reports.GetByID)
	if err != nil {
		return nil, err
	}
	report, err := s.reports.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		ID:           uuid.NewString(),
		Type:         events.EventHealthDataStatusChanged,
		HealthDataID: report.ID,
		Actor:        events.Actor{UserID: actor.ID, Role: actor.Role},
		Timestamp:    time.Now(),
		Payload: events.HealthDataStatusChangedPayload{
			OldStatus: current.Status,
			NewStatus: report.Status,
		},
	})
	return report, nil
}

// SoftDelete flags the report as deleted after the lifecycle gate.
func (s *HealthDataService) SoftDelete(ctx context.Context, id string) (*domain.HealthData, error) {
	if _, err := loadGuarded(ctx, id, s.reports.GetByID); err != nil {
		return nil, err
	}
	report, err := s.reports.SoftDelete(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return report, nil
}

func (s *HealthDataService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

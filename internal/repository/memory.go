package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

// In-memory implementations of the repository interfaces. They mirror the
// Postgres semantics, including pgx.ErrNoRows on misses and the
// compare-and-set refresh-token rotation, and back the service tests.

// MemoryUserRepository is a map-backed UserRepository.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

// NewMemoryUserRepository builds an empty repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*domain.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryUserRepository) GetActiveByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email && user.IsActive && !user.IsDeleted {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryUserRepository) ListByRoles(_ context.Context, roles []domain.Role) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	var result []domain.User
	for _, user := range r.users {
		if _, ok := allowed[user.Role]; ok && user.IsActive && !user.IsDeleted {
			result = append(result, *user)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *MemoryUserRepository) Update(_ context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.MobileNumber != nil {
		user.MobileNumber = *upd.MobileNumber
	}
	user.UpdatedAt = time.Now()
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) SoftDelete(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user.IsDeleted = true
	user.UpdatedAt = time.Now()
	copied := *user
	return &copied, nil
}

func (r *MemoryUserRepository) SetRefreshToken(_ context.Context, id, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.RefreshToken = &token
	return nil
}

func (r *MemoryUserRepository) RotateRefreshToken(_ context.Context, id, presented, next string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok || user.RefreshToken == nil || *user.RefreshToken != presented {
		return pgx.ErrNoRows
	}
	user.RefreshToken = &next
	return nil
}

// MemoryFacilityRepository is a map-backed FacilityRepository.
type MemoryFacilityRepository struct {
	mu         sync.Mutex
	facilities map[string]*domain.Facility
}

// NewMemoryFacilityRepository builds an empty repository.
func NewMemoryFacilityRepository() *MemoryFacilityRepository {
	return &MemoryFacilityRepository{facilities: make(map[string]*domain.Facility)}
}

func (r *MemoryFacilityRepository) Create(_ context.Context, facility *domain.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	facility.ID = uuid.NewString()
	facility.CreatedAt = time.Now()
	facility.UpdatedAt = facility.CreatedAt
	stored := *facility
	r.facilities[facility.ID] = &stored
	return nil
}

func (r *MemoryFacilityRepository) GetByID(_ context.Context, id string) (*domain.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	facility, ok := r.facilities[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *facility
	return &copied, nil
}

func (r *MemoryFacilityRepository) List(_ context.Context) ([]domain.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Facility
	for _, facility := range r.facilities {
		if facility.IsActive && !facility.IsDeleted {
			result = append(result, *facility)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *MemoryFacilityRepository) ListByDistrict(_ context.Context, districtID string) ([]domain.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Facility
	for _, facility := range r.facilities {
		if facility.DistrictID != nil && *facility.DistrictID == districtID && facility.IsActive && !facility.IsDeleted {
			result = append(result, *facility)
		}
	}
	return result, nil
}

func (r *MemoryFacilityRepository) Update(_ context.Context, id string, upd domain.FacilityUpdate) (*domain.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	facility, ok := r.facilities[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if upd.Name != nil {
		facility.Name = *upd.Name
	}
	if upd.AddressState != nil {
		facility.Address.State = *upd.AddressState
	}
	if upd.AddressCity != nil {
		facility.Address.City = *upd.AddressCity
	}
	if upd.AddressPincode != nil {
		facility.Address.Pincode = *upd.AddressPincode
	}
	if upd.Type != nil {
		facility.Type = *upd.Type
	}
	if upd.DistrictID != nil {
		facility.DistrictID = upd.DistrictID
	}
	facility.UpdatedAt = time.Now()
	copied := *facility
	return &copied, nil
}

func (r *MemoryFacilityRepository) SoftDelete(_ context.Context, id string) (*domain.Facility, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	facility, ok := r.facilities[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	facility.IsDeleted = true
	facility.UpdatedAt = time.Now()
	copied := *facility
	return &copied, nil
}

// MemoryStateRepository is a map-backed StateRepository.
type MemoryStateRepository struct {
	mu     sync.Mutex
	states map[string]*domain.State
}

// NewMemoryStateRepository builds an empty repository.
func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{states: make(map[string]*domain.State)}
}

func (r *MemoryStateRepository) Create(_ context.Context, state *domain.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	state.ID = uuid.NewString()
	state.CreatedAt = time.Now()
	state.UpdatedAt = state.CreatedAt
	stored := *state
	r.states[state.ID] = &stored
	return nil
}

func (r *MemoryStateRepository) GetByID(_ context.Context, id string) (*domain.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *state
	return &copied, nil
}

func (r *MemoryStateRepository) List(_ context.Context) ([]domain.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.State
	for _, state := range r.states {
		if state.IsActive && !state.IsDeleted {
			result = append(result, *state)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *MemoryStateRepository) Update(_ context.Context, id string, upd domain.StateUpdate) (*domain.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if upd.Name != nil {
		state.Name = *upd.Name
	}
	state.UpdatedAt = time.Now()
	copied := *state
	return &copied, nil
}

func (r *MemoryStateRepository) SoftDelete(_ context.Context, id string) (*domain.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	state.IsDeleted = true
	state.UpdatedAt = time.Now()
	copied := *state
	return &copied, nil
}

// MemoryDistrictRepository is a map-backed DistrictRepository.
type MemoryDistrictRepository struct {
	mu        sync.Mutex
	districts map[string]*domain.District
}

// NewMemoryDistrictRepository builds an empty repository.
func NewMemoryDistrictRepository() *MemoryDistrictRepository {
	return &MemoryDistrictRepository{districts: make(map[string]*domain.District)}
}

func (r *MemoryDistrictRepository) Create(_ context.Context, district *domain.District) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	district.ID = uuid.NewString()
	district.CreatedAt = time.Now()
	district.UpdatedAt = district.CreatedAt
	stored := *district
	r.districts[district.ID] = &stored
	return nil
}

func (r *MemoryDistrictRepository) GetByID(_ context.Context, id string) (*domain.District, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	district, ok := r.districts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *district
	return &copied, nil
}

func (r *MemoryDistrictRepository) List(_ context.Context) ([]domain.District, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.District
	for _, district := range r.districts {
		if district.IsActive && !district.IsDeleted {
			result = append(result, *district)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *MemoryDistrictRepository) ListByState(_ context.Context, stateID string) ([]domain.District, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.District
	for _, district := range r.districts {
		if district.StateID == stateID && district.IsActive && !district.IsDeleted {
			result = append(result, *district)
		}
	}
	return result, nil
}

func (r *MemoryDistrictRepository) Update(_ context.Context, id string, upd domain.DistrictUpdate) (*domain.District, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	district, ok := r.districts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if upd.Name != nil {
		district.Name = *upd.Name
	}
	if upd.StateID != nil {
		district.StateID = *upd.StateID
	}
	district.UpdatedAt = time.Now()
	copied := *district
	return &copied, nil
}

func (r *MemoryDistrictRepository) SoftDelete(_ context.Context, id string) (*domain.District, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	district, ok := r.districts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	district.IsDeleted = true
	district.UpdatedAt = time.Now()
	copied := *district
	return &copied, nil
}

// MemoryDepartmentRepository is a map-backed DepartmentRepository.
type MemoryDepartmentRepository struct {
	mu          sync.Mutex
	departments map[string]*domain.Department
}

// NewMemoryDepartmentRepository builds an empty repository.
func NewMemoryDepartmentRepository() *MemoryDepartmentRepository {
	return &MemoryDepartmentRepository{departments: make(map[string]*domain.Department)}
}

func (r *MemoryDepartmentRepository) Create(_ context.Context, dept *domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	dept.ID = uuid.NewString()
	dept.CreatedAt = time.Now()
	dept.UpdatedAt = dept.CreatedAt
	stored := *dept
	r.departments[dept.ID] = &stored
	return nil
}

func (r *MemoryDepartmentRepository) GetByID(_ context.Context, id string) (*domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dept, ok := r.departments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *dept
	return &copied, nil
}

func (r *MemoryDepartmentRepository) List(_ context.Context) ([]domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Department
	for _, dept := range r.departments {
		if dept.IsActive && !dept.IsDeleted {
			result = append(result, *dept)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *MemoryDepartmentRepository) ListByFacility(_ context.Context, facilityID string) ([]domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Department
	for _, dept := range r.departments {
		if dept.FacilityID == facilityID && dept.IsActive && !dept.IsDeleted {
			result = append(result, *dept)
		}
	}
	return result, nil
}

func (r *MemoryDepartmentRepository) Update(_ context.Context, id string, upd domain.DepartmentUpdate) (*domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dept, ok := r.departments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if upd.Name != nil {
		dept.Name = *upd.Name
	}
	dept.UpdatedAt = time.Now()
	copied := *dept
	return &copied, nil
}

func (r *MemoryDepartmentRepository) SoftDelete(_ context.Context, id string) (*domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dept, ok := r.departments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	dept.IsDeleted = true
	dept.UpdatedAt = time.Now()
	copied := *dept
	return &copied, nil
}

// MemoryHealthDataRepository is a map-backed HealthDataRepository.
type MemoryHealthDataRepository struct {
	mu      sync.Mutex
	reports map[string]*domain.HealthData
}

// NewMemoryHealthDataRepository builds an empty repository.
func NewMemoryHealthDataRepository() *MemoryHealthDataRepository {
	return &MemoryHealthDataRepository{reports: make(map[string]*domain.HealthData)}
}

func (r *MemoryHealthDataRepository) Create(_ context.Context, report *domain.HealthData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report.ID = uuid.NewString()
	report.CreatedAt = time.Now()
	report.UpdatedAt = report.CreatedAt
	stored := *report
	r.reports[report.ID] = &stored
	return nil
}

func (r *MemoryHealthDataRepository) GetByID(_ context.Context, id string) (*domain.HealthData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *report
	return &copied, nil
}

func (r *MemoryHealthDataRepository) List(_ context.Context) ([]domain.HealthData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.HealthData
	for _, report := range r.reports {
		if report.IsActive && !report.IsDeleted {
			result = append(result, *report)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DateOfReport.After(result[j].DateOfReport) })
	return result, nil
}

func (r *MemoryHealthDataRepository) ListByFacility(_ context.Context, facilityID string) ([]domain.HealthData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.HealthData
	for _, report := range r.reports {
		if report.FacilityID == facilityID && report.IsActive && !report.IsDeleted {
			result = append(result, *report)
		}
	}
	return result, nil
}

func (r *MemoryHealthDataRepository) Update(_ context.Context, id string, upd domain.HealthDataUpdate) (*domain.HealthData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if upd.Data != nil {
		report.Data = upd.Data
	}
	report.UpdatedAt = time.Now()
	copied := *report
	return &copied, nil
}

func (r *MemoryHealthDataRepository) UpdateStatus(_ context.Context, id string, status domain.HealthDataStatus) (*domain.HealthData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	report.Status = status
	report.UpdatedAt = time.Now()
	copied := *report
	return &copied, nil
}

func (r *MemoryHealthDataRepository) SoftDelete(_ context.Context, id string) (*domain.HealthData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	report.IsDeleted = true
	report.UpdatedAt = time.Now()
	copied := *report
	return &copied, nil
}

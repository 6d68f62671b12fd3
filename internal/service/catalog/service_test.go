package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	serviceRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/service"
	staffRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/staff"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/catalog/models"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/ptr"
)

type fakeServiceRepo struct {
	byID   map[int64]*domain.Service
	nextID int64
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	f.nextID++
	stored := *svc
	stored.ID = f.nextID
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.byID[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

func (f *fakeServiceRepo) ListActive(_ context.Context) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for _, svc := range f.byID {
		if svc.IsActive {
			result = append(result, svc)
		}
	}
	return result, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	if _, ok := f.byID[svc.ID]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	copied := *svc
	f.byID[svc.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) Deactivate(_ context.Context, id int64) error {
	svc, ok := f.byID[id]
	if !ok {
		return serviceRepo.ErrServiceNotFound
	}
	svc.IsActive = false
	return nil
}

type fakeStaffRepo struct {
	byID   map[int64]*domain.Staff
	edges  []*domain.StaffService
	nextID int64
}

func (f *fakeStaffRepo) Create(_ context.Context, st *domain.Staff) (*domain.Staff, error) {
	f.nextID++
	stored := *st
	stored.ID = f.nextID
	f.byID[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	st, ok := f.byID[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	copied := *st
	return &copied, nil
}

func (f *fakeStaffRepo) ListActive(_ context.Context) ([]*domain.Staff, error) {
	result := make([]*domain.Staff, 0)
	for _, st := range f.byID {
		if st.IsActive {
			result = append(result, st)
		}
	}
	return result, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, st *domain.Staff) error {
	if _, ok := f.byID[st.ID]; !ok {
		return staffRepo.ErrStaffNotFound
	}
	copied := *st
	f.byID[st.ID] = &copied
	return nil
}

func (f *fakeStaffRepo) Deactivate(_ context.Context, id int64) error {
	st, ok := f.byID[id]
	if !ok {
		return staffRepo.ErrStaffNotFound
	}
	st.IsActive = false
	return nil
}

func (f *fakeStaffRepo) AssignService(_ context.Context, edge *domain.StaffService) (*domain.StaffService, error) {
	stored := *edge
	stored.ID = int64(len(f.edges) + 1)
	f.edges = append(f.edges, &stored)
	return &stored, nil
}

func (f *fakeStaffRepo) ListServices(_ context.Context, staffID int64) ([]*domain.StaffService, error) {
	result := make([]*domain.StaffService, 0)
	for _, e := range f.edges {
		if e.StaffID == staffID {
			result = append(result, e)
		}
	}
	return result, nil
}

type fakeScheduleRepo struct {
	byStaff map[int64][]*domain.StaffSchedule
}

func (f *fakeScheduleRepo) GetByStaff(_ context.Context, staffID int64) ([]*domain.StaffSchedule, error) {
	return f.byStaff[staffID], nil
}

func (f *fakeScheduleRepo) ReplaceForStaff(_ context.Context, staffID int64, entries []*domain.StaffSchedule) error {
	f.byStaff[staffID] = entries
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	services  *fakeServiceRepo
	staff     *fakeStaffRepo
	schedules *fakeScheduleRepo
	svc       *Service
}

func newFixture() *fixture {
	f := &fixture{
		services:  &fakeServiceRepo{byID: map[int64]*domain.Service{}},
		staff:     &fakeStaffRepo{byID: map[int64]*domain.Staff{}},
		schedules: &fakeScheduleRepo{byStaff: map[int64][]*domain.StaffSchedule{}},
	}
	f.svc = NewService(f.services, f.staff, f.schedules, nopLogger{})
	return f
}

func TestCreateService(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name:            "  Стрижка  ",
		DurationMinutes: 30,
		Price:           ptr.Ptr(1500.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Стрижка", resp.Name)
	assert.True(t, resp.IsActive)
}

func TestCreateService_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{Name: " ", DurationMinutes: 30})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.CreateService(context.Background(), &models.CreateServiceRequest{Name: "Стрижка", DurationMinutes: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Стрижка", DurationMinutes: 30, Price: ptr.Ptr(-1.0),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateService_PartialUpdate(t *testing.T) {
	f := newFixture()
	created, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Стрижка", DurationMinutes: 30,
	})
	require.NoError(t, err)

	// nil-поля не изменяются
	resp, err := f.svc.UpdateService(context.Background(), created.ID, &models.UpdateServiceRequest{
		DurationMinutes: ptr.Ptr(45),
	})
	require.NoError(t, err)
	assert.Equal(t, "Стрижка", resp.Name)
	assert.Equal(t, 45, resp.DurationMinutes)

	_, err = f.svc.UpdateService(context.Background(), 99, &models.UpdateServiceRequest{})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeactivateService(t *testing.T) {
	f := newFixture()
	created, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Стрижка", DurationMinutes: 30,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeactivateService(context.Background(), created.ID))

	// Деактивированная услуга уходит из публичной выдачи
	list, err := f.svc.ListServices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list.Services)

	// Но остаётся доступной по ID
	got, err := f.svc.GetService(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.ErrorIs(t, f.svc.DeactivateService(context.Background(), 99), ErrServiceNotFound)
}

func TestAssignService(t *testing.T) {
	f := newFixture()
	svc, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Стрижка", DurationMinutes: 30,
	})
	require.NoError(t, err)
	st, err := f.svc.CreateStaff(context.Background(), &models.CreateStaffRequest{Name: "Мария"})
	require.NoError(t, err)

	edge, err := f.svc.AssignService(context.Background(), st.ID, &models.AssignServiceRequest{ServiceID: svc.ID})
	require.NoError(t, err)
	assert.Equal(t, st.ID, edge.StaffID)
	assert.Equal(t, svc.ID, edge.ServiceID)

	list, err := f.svc.ListStaffServices(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Len(t, list.Services, 1)

	_, err = f.svc.AssignService(context.Background(), 99, &models.AssignServiceRequest{ServiceID: svc.ID})
	require.ErrorIs(t, err, ErrStaffNotFound)

	_, err = f.svc.AssignService(context.Background(), st.ID, &models.AssignServiceRequest{ServiceID: 99})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestReplaceStaffSchedule(t *testing.T) {
	f := newFixture()
	st, err := f.svc.CreateStaff(context.Background(), &models.CreateStaffRequest{Name: "Мария"})
	require.NoError(t, err)

	resp, err := f.svc.ReplaceStaffSchedule(context.Background(), st.ID, &models.ReplaceScheduleRequest{
		Entries: []models.ScheduleEntryRequest{
			{Weekday: 0, OpenTime: "09:00", CloseTime: "17:00", IsWorking: true},
			{Weekday: 6, OpenTime: "00:00", CloseTime: "00:00", IsWorking: false},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)

	got, err := f.svc.GetStaffSchedule(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Len(t, got.Entries, 2)
}

func TestReplaceStaffSchedule_Validation(t *testing.T) {
	f := newFixture()
	st, err := f.svc.CreateStaff(context.Background(), &models.CreateStaffRequest{Name: "Мария"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		entries []models.ScheduleEntryRequest
		wantErr error
	}{
		{
			name: "duplicate weekday",
			entries: []models.ScheduleEntryRequest{
				{Weekday: 0, OpenTime: "09:00", CloseTime: "17:00", IsWorking: true},
				{Weekday: 0, OpenTime: "10:00", CloseTime: "18:00", IsWorking: true},
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "weekday out of range",
			entries: []models.ScheduleEntryRequest{
				{Weekday: 7, OpenTime: "09:00", CloseTime: "17:00", IsWorking: true},
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "working day with empty window",
			entries: []models.ScheduleEntryRequest{
				{Weekday: 0, OpenTime: "17:00", CloseTime: "09:00", IsWorking: true},
			},
			wantErr: ErrInvalidSchedule,
		},
		{
			name: "malformed time",
			entries: []models.ScheduleEntryRequest{
				{Weekday: 0, OpenTime: "9am", CloseTime: "17:00", IsWorking: true},
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ReplaceStaffSchedule(context.Background(), st.ID, &models.ReplaceScheduleRequest{Entries: tt.entries})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = f.svc.ReplaceStaffSchedule(context.Background(), 99, &models.ReplaceScheduleRequest{})
	require.ErrorIs(t, err, ErrStaffNotFound)
}

package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	scheduleRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/schedule"
	serviceRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/service"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeStaffRepo struct {
	qualified []int64
}

func (f *fakeStaffRepo) ListQualifiedStaffIDs(_ context.Context, _ int64) ([]int64, error) {
	return f.qualified, nil
}

type fakeScheduleRepo struct {
	schedules map[int64]*domain.StaffSchedule
}

func (f *fakeScheduleRepo) GetByStaffAndWeekday(_ context.Context, staffID int64, _ domain.Weekday) (*domain.StaffSchedule, error) {
	sched, ok := f.schedules[staffID]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return sched, nil
}

type fakeAppointmentRepo struct {
	byStaff map[int64][]*domain.Appointment
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if filter.StaffID == nil {
		return nil, errors.New("expected staff filter")
	}
	return f.byStaff[*filter.StaffID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(
	services *fakeServiceRepo,
	staff *fakeStaffRepo,
	schedules *fakeScheduleRepo,
	appointments *fakeAppointmentRepo,
) *UseCase {
	return NewUseCase(services, staff, schedules, appointments, nopLogger{})
}

// Понедельник
var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func activeService(id int64, duration int) *domain.Service {
	return &domain.Service{
		ID:              id,
		Name:            "Стрижка",
		DurationMinutes: duration,
		IsActive:        true,
	}
}

func workingSchedule(staffID int64, open, close string) *domain.StaffSchedule {
	return &domain.StaffSchedule{
		StaffID:   staffID,
		Weekday:   0,
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(close),
		IsWorking: true,
	}
}

func TestExecute_FullDayGrid(t *testing.T) {
	uc := newTestUseCase(
		&fakeServiceRepo{services: map[int64]*domain.Service{1: activeService(1, 30)}},
		&fakeStaffRepo{qualified: []int64{10}},
		&fakeScheduleRepo{schedules: map[int64]*domain.StaffSchedule{10: workingSchedule(10, "09:00", "17:00")}},
		&fakeAppointmentRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)

	// 8 часов по 30 минут = 16 слотов
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[0].EndTime)
	assert.Equal(t, types.TimeString("16:30"), resp.Slots[15].StartTime)
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[15].EndTime)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Equal(t, int64(10), slot.StaffID)
	}
}

func TestExecute_BusySlotsMarkedUnavailable(t *testing.T) {
	uc := newTestUseCase(
		&fakeServiceRepo{services: map[int64]*domain.Service{1: activeService(1, 30)}},
		&fakeStaffRepo{qualified: []int64{10}},
		&fakeScheduleRepo{schedules: map[int64]*domain.StaffSchedule{10: workingSchedule(10, "09:00", "11:00")}},
		&fakeAppointmentRepo{byStaff: map[int64][]*domain.Appointment{
			10: {{StaffID: 10, StartTime: "09:15", EndTime: "09:45"}},
		}},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	// Запись 09:15-09:45 пересекает оба слота 09:00 и 09:30
	assert.False(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
	assert.True(t, resp.Slots[3].Available)
}

func TestExecute_NoQualifiedStaff(t *testing.T) {
	uc := newTestUseCase(
		&fakeServiceRepo{services: map[int64]*domain.Service{1: activeService(1, 30)}},
		&fakeStaffRepo{},
		&fakeScheduleRepo{},
		&fakeAppointmentRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
	assert.Equal(t, NoStaffMessage, resp.Message)
}

func TestExecute_InactiveService(t *testing.T) {
	inactive := activeService(1, 30)
	inactive.IsActive = false

	uc := newTestUseCase(
		&fakeServiceRepo{services: map[int64]*domain.Service{1: inactive}},
		&fakeStaffRepo{qualified: []int64{10}},
		&fakeScheduleRepo{},
		&fakeAppointmentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 1})
	require.ErrorIs(t, err, ErrInvalidService)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(
		&fakeServiceRepo{},
		&fakeStaffRepo{},
		&fakeScheduleRepo{},
		&fakeAppointmentRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 99})
	require.ErrorIs(t, err, ErrInvalidService)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeServiceRepo{}, &fakeStaffRepo{}, &fakeScheduleRepo{}, &fakeAppointmentRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SkipsStaffWithoutSchedule(t *testing.T) {
	uc := newTestUseCase(
		&fakeServiceRepo{services: map[int64]*domain.Service{1: activeService(1, 60)}},
		&fakeStaffRepo{qualified: []int64{10, 20}},
		&fakeScheduleRepo{schedules: map[int64]*domain.StaffSchedule{20: workingSchedule(20, "10:00", "12:00")}},
		&fakeAppointmentRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	for _, slot := range resp.Slots {
		assert.Equal(t, int64(20), slot.StaffID)
	}
}

func TestExecute_SkipsNonWorkingDay(t *testing.T) {
	dayOff := workingSchedule(10, "09:00", "17:00")
	dayOff.IsWorking = false

	uc := newTestUseCase(
		&fakeServiceRepo{services: map[int64]*domain.Service{1: activeService(1, 30)}},
		&fakeStaffRepo{qualified: []int64{10}},
		&fakeScheduleRepo{schedules: map[int64]*domain.StaffSchedule{10: dayOff}},
		&fakeAppointmentRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DedupesQualifiedStaff(t *testing.T) {
	uc := newTestUseCase(
		&fakeServiceRepo{services: map[int64]*domain.Service{1: activeService(1, 60)}},
		&fakeStaffRepo{qualified: []int64{10, 10, 10}},
		&fakeScheduleRepo{schedules: map[int64]*domain.StaffSchedule{10: workingSchedule(10, "09:00", "10:00")}},
		&fakeAppointmentRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 1)
}

func TestExecute_ServiceLongerThanWindow(t *testing.T) {
	uc := newTestUseCase(
		&fakeServiceRepo{services: map[int64]*domain.Service{1: activeService(1, 90)}},
		&fakeStaffRepo{qualified: []int64{10}},
		&fakeScheduleRepo{schedules: map[int64]*domain.StaffSchedule{10: workingSchedule(10, "09:00", "10:00")}},
		&fakeAppointmentRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, ServiceID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGenerateStaffSlots_PartialLastStep(t *testing.T) {
	// 09:00-10:15 при шаге 30: последний слот 09:30-10:00, хвост 15 минут отбрасывается
	slots, err := generateStaffSlots(workingSchedule(10, "09:00", "10:15"), 1, 30, nil)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:30"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[1].EndTime)
}

func TestGenerateStaffSlots_WindowAtMidnight(t *testing.T) {
	slots, err := generateStaffSlots(workingSchedule(10, "23:00", "23:59"), 1, 30, nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("23:00"), slots[0].StartTime)
}

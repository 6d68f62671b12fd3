package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	appointmentRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/appointment"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	byID      map[int64]*domain.Appointment
	updateErr error
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	ap, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *ap
	return &copied, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, ap := range f.byID {
		if filter.Status != nil && ap.Status != *filter.Status {
			continue
		}
		if filter.ExcludeCanceled && ap.IsCanceled() {
			continue
		}
		result = append(result, ap)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	ap, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	ap.Status = status
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Send(_ context.Context, message string) error {
	f.messages = append(f.messages, message)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:            id,
		CustomerName:  "Анна",
		CustomerPhone: "+79990001122",
		Date:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		EndTime:       "09:30",
		ServiceID:     1,
		StaffID:       10,
		Status:        status,
	}
}

func newTestService(repo *fakeAppointmentRepo, notifier *fakeNotifier) *Service {
	return NewService(repo, notifier, nopLogger{})
}

func TestConfirm(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
		1: testAppointment(1, domain.StatusPending),
	}}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.byID[1].Status)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "confirmed")
}

func TestConfirm_NotFound(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}}, &fakeNotifier{})

	_, err := svc.Confirm(context.Background(), 99)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_Idempotent(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
		1: testAppointment(1, domain.StatusCanceled),
	}}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	// Повторная отмена не ошибка, уведомление уходит заново
	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)
	assert.Len(t, notifier.messages, 1)

	_, err = svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, notifier.messages, 2)
}

func TestGetByID(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
		1: testAppointment(1, domain.StatusPending),
	}}
	svc := newTestService(repo, &fakeNotifier{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "09:00", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 2)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}}, &fakeNotifier{})

	badStatus := "rescheduled"
	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Status: &badStatus})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_FiltersByStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{
		1: testAppointment(1, domain.StatusPending),
		2: testAppointment(2, domain.StatusCanceled),
	}}
	svc := newTestService(repo, &fakeNotifier{})

	pending := string(domain.StatusPending)
	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{Status: &pending})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
}

func TestTransition_InternalError(t *testing.T) {
	repo := &fakeAppointmentRepo{
		byID:      map[int64]*domain.Appointment{1: testAppointment(1, domain.StatusPending)},
		updateErr: errors.New("connection reset"),
	}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.Confirm(context.Background(), 1)
	require.ErrorIs(t, err, ErrInternal)
}

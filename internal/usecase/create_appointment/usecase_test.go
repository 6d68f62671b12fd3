package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	appointmentRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/appointment"
	serviceRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/service"
	settingsRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/settings"
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

type fakeSettingsRepo struct {
	hours    map[domain.Weekday]*domain.BusinessHours
	holidays map[string]bool
}

func (f *fakeSettingsRepo) GetBusinessHoursByWeekday(_ context.Context, weekday domain.Weekday) (*domain.BusinessHours, error) {
	h, ok := f.hours[weekday]
	if !ok {
		return nil, settingsRepo.ErrBusinessHoursNotFound
	}
	return h, nil
}

func (f *fakeSettingsRepo) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	return f.holidays[date.Format(domain.DateFormat)], nil
}

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
	nextID    int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	stored := *appointment
	stored.ID = f.nextID
	f.created = &stored
	return &stored, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, ap := range f.existing {
		if filter.Date != nil && !ap.Date.Equal(*filter.Date) {
			continue
		}
		if filter.ExcludeCanceled && ap.IsCanceled() {
			continue
		}
		result = append(result, ap)
	}
	return result, nil
}

// fakeTxManager вызывает fn напрямую, без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Send(_ context.Context, message string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	services     *fakeServiceRepo
	settings     *fakeSettingsRepo
	appointments *fakeAppointmentRepo
	notifier     *fakeNotifier
	uc           *UseCase
}

// Рабочий день понедельник 09:00-18:00, услуга id=1 активна
func newFixture() *fixture {
	f := &fixture{
		services: &fakeServiceRepo{services: map[int64]*domain.Service{
			1: {ID: 1, Name: "Стрижка", DurationMinutes: 30, IsActive: true},
		}},
		settings: &fakeSettingsRepo{
			hours: map[domain.Weekday]*domain.BusinessHours{
				0: {Weekday: 0, OpenTime: "09:00", CloseTime: "18:00", SlotMinutes: 30},
			},
			holidays: map[string]bool{},
		},
		appointments: &fakeAppointmentRepo{},
		notifier:     &fakeNotifier{},
	}
	f.uc = NewUseCase(f.services, f.settings, f.appointments, fakeTxManager{}, f.notifier, nopLogger{})
	return f
}

// Понедельник
const testDate = "2026-03-02"

func validRequest() *Request {
	return &Request{
		CustomerName:  "Анна",
		CustomerPhone: "+79990001122",
		Date:          testDate,
		StartTime:     "09:00",
		EndTime:       "09:30",
		ServiceID:     1,
		StaffID:       10,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.Appointment)

	assert.Equal(t, domain.StatusPending, resp.Appointment.Status)
	assert.Equal(t, "Анна", resp.Appointment.CustomerName)
	require.Len(t, f.notifier.messages, 1)
	assert.Contains(t, f.notifier.messages[0], "Стрижка")
	assert.Contains(t, f.notifier.messages[0], "09:00-09:30")
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	date, _ := time.Parse(domain.DateFormat, testDate)
	f.appointments.existing = []*domain.Appointment{
		{Date: date, StartTime: "09:15", EndTime: "09:45", Status: domain.StatusPending},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, f.notifier.messages)
}

func TestExecute_AdjacentSlotAllowed(t *testing.T) {
	f := newFixture()
	date, _ := time.Parse(domain.DateFormat, testDate)
	f.appointments.existing = []*domain.Appointment{
		{Date: date, StartTime: "09:00", EndTime: "09:30", Status: domain.StatusConfirmed},
	}

	req := validRequest()
	req.StartTime = "09:30"
	req.EndTime = "10:00"

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_CanceledAppointmentIgnored(t *testing.T) {
	f := newFixture()
	date, _ := time.Parse(domain.DateFormat, testDate)
	f.appointments.existing = []*domain.Appointment{
		{Date: date, StartTime: "09:00", EndTime: "09:30", Status: domain.StatusCanceled},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_Holiday(t *testing.T) {
	f := newFixture()
	f.settings.holidays[testDate] = true

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrHoliday)
}

func TestExecute_ShopClosed(t *testing.T) {
	f := newFixture()

	// Часы на день недели не заданы
	delete(f.settings.hours, 0)
	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrShopClosed)

	// Часы заданы, но день нерабочий (open == close)
	f.settings.hours[0] = &domain.BusinessHours{Weekday: 0, OpenTime: "00:00", CloseTime: "00:00"}
	_, err = f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = "08:30"
	req.EndTime = "09:00"
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideBusinessHours)

	req = validRequest()
	req.StartTime = "17:45"
	req.EndTime = "18:15"
	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrOutsideBusinessHours)

	// Граничный интервал у самого закрытия валиден
	req = validRequest()
	req.StartTime = "17:30"
	req.EndTime = "18:00"
	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"empty customer name", func(r *Request) { r.CustomerName = "  " }},
		{"empty phone", func(r *Request) { r.CustomerPhone = "" }},
		{"malformed date", func(r *Request) { r.Date = "02.03.2026" }},
		{"malformed start time", func(r *Request) { r.StartTime = "9am" }},
		{"end before start", func(r *Request) { r.StartTime = "10:00"; r.EndTime = "09:30" }},
		{"empty interval", func(r *Request) { r.EndTime = r.StartTime }},
		{"zero service id", func(r *Request) { r.ServiceID = 0 }},
		{"negative staff id", func(r *Request) { r.StaffID = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_InvalidService(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ServiceID = 99
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidService)

	f.services.services[1].IsActive = false
	_, err = f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInvalidService)
}

func TestExecute_DuplicateSlotFromStorage(t *testing.T) {
	f := newFixture()
	f.appointments.createErr = appointmentRepo.ErrDuplicateSlot

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_NotifierFailureDoesNotFail(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("line api unavailable")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp.Appointment)
}

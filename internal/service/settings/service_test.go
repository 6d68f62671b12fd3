package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/settings/models"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/ptr"
)

type fakeSettingsRepo struct {
	hours    []*domain.BusinessHours
	holidays []*domain.Holiday
}

func (f *fakeSettingsRepo) GetBusinessHours(_ context.Context) ([]*domain.BusinessHours, error) {
	return f.hours, nil
}

func (f *fakeSettingsRepo) ReplaceBusinessHours(_ context.Context, hours []*domain.BusinessHours) error {
	f.hours = hours
	return nil
}

func (f *fakeSettingsRepo) GetHolidays(_ context.Context) ([]*domain.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeSettingsRepo) ReplaceHolidays(_ context.Context, holidays []*domain.Holiday) error {
	f.holidays = holidays
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestReplaceBusinessHours(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ReplaceBusinessHours(context.Background(), &models.ReplaceBusinessHoursRequest{
		Entries: []models.BusinessHoursEntryRequest{
			{Weekday: 0, OpenTime: "09:00", CloseTime: "18:00", SlotMinutes: 30},
			{Weekday: 6, OpenTime: "00:00", CloseTime: "00:00"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)

	// Нулевой шаг сетки заменяется значением по умолчанию
	assert.Equal(t, domain.DefaultSlotMinutes, resp.Entries[1].SlotMinutes)

	got, err := svc.GetBusinessHours(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Entries, 2)
}

func TestReplaceBusinessHours_Validation(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	tests := []struct {
		name    string
		entries []models.BusinessHoursEntryRequest
		wantErr error
	}{
		{
			name: "duplicate weekday",
			entries: []models.BusinessHoursEntryRequest{
				{Weekday: 0, OpenTime: "09:00", CloseTime: "18:00", SlotMinutes: 30},
				{Weekday: 0, OpenTime: "10:00", CloseTime: "19:00", SlotMinutes: 30},
			},
			wantErr: ErrInvalidHours,
		},
		{
			name: "weekday out of range",
			entries: []models.BusinessHoursEntryRequest{
				{Weekday: -1, OpenTime: "09:00", CloseTime: "18:00", SlotMinutes: 30},
			},
			wantErr: ErrInvalidHours,
		},
		{
			name: "close before open",
			entries: []models.BusinessHoursEntryRequest{
				{Weekday: 0, OpenTime: "18:00", CloseTime: "09:00", SlotMinutes: 30},
			},
			wantErr: ErrInvalidHours,
		},
		{
			name: "negative slot step",
			entries: []models.BusinessHoursEntryRequest{
				{Weekday: 0, OpenTime: "09:00", CloseTime: "18:00", SlotMinutes: -5},
			},
			wantErr: ErrInvalidHours,
		},
		{
			name: "malformed time",
			entries: []models.BusinessHoursEntryRequest{
				{Weekday: 0, OpenTime: "9am", CloseTime: "18:00", SlotMinutes: 30},
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ReplaceBusinessHours(context.Background(), &models.ReplaceBusinessHoursRequest{Entries: tt.entries})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReplaceHolidays(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ReplaceHolidays(context.Background(), &models.ReplaceHolidaysRequest{
		Entries: []models.HolidayEntryRequest{
			{Date: "2026-01-01", Reason: ptr.Ptr("Новый год")},
			{Date: "2026-01-07"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Holidays, 2)
	assert.Equal(t, "2026-01-01", resp.Holidays[0].Date)

	// Полная замена перезаписывает предыдущий набор
	resp, err = svc.ReplaceHolidays(context.Background(), &models.ReplaceHolidaysRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Holidays)

	got, err := svc.GetHolidays(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Holidays)
}

func TestReplaceHolidays_MalformedDate(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	_, err := svc.ReplaceHolidays(context.Background(), &models.ReplaceHolidaysRequest{
		Entries: []models.HolidayEntryRequest{{Date: "01.01.2026"}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

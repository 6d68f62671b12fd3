package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   types.TimeString
		aEnd     types.TimeString
		bStart   types.TimeString
		bEnd     types.TimeString
		expected bool
	}{
		{
			name:   "partial overlap",
			aStart: "09:00", aEnd: "10:00",
			bStart: "09:30", bEnd: "10:30",
			expected: true,
		},
		{
			name:   "touching boundary is not overlap",
			aStart: "09:00", aEnd: "10:00",
			bStart: "10:00", bEnd: "11:00",
			expected: false,
		},
		{
			name:   "contained interval",
			aStart: "09:00", aEnd: "12:00",
			bStart: "10:00", bEnd: "11:00",
			expected: true,
		},
		{
			name:   "identical intervals",
			aStart: "09:00", aEnd: "10:00",
			bStart: "09:00", bEnd: "10:00",
			expected: true,
		},
		{
			name:   "disjoint intervals",
			aStart: "09:00", aEnd: "10:00",
			bStart: "14:00", bEnd: "15:00",
			expected: false,
		},
		{
			name:   "touching boundary reversed order",
			aStart: "10:00", aEnd: "11:00",
			bStart: "09:00", bEnd: "10:00",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestValidateInterval(t *testing.T) {
	require.NoError(t, ValidateInterval("09:00", "09:30"))

	err := ValidateInterval("09:30", "09:00")
	require.ErrorIs(t, err, ErrInvalidInterval)

	err = ValidateInterval("09:00", "09:00")
	require.ErrorIs(t, err, ErrInvalidInterval)

	err = ValidateInterval("9am", "10:00")
	require.Error(t, err)
}

func TestWeekdayOf(t *testing.T) {
	// 2026-03-02 понедельник
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Weekday(0), WeekdayOf(monday))

	// 2026-03-07 суббота
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Weekday(5), WeekdayOf(saturday))

	// 2026-03-08 воскресенье
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Weekday(6), WeekdayOf(sunday))
}

func TestBusinessHoursIsClosed(t *testing.T) {
	open := &BusinessHours{Weekday: 0, OpenTime: "09:00", CloseTime: "17:00"}
	assert.False(t, open.IsClosed())

	closed := &BusinessHours{Weekday: 6, OpenTime: "00:00", CloseTime: "00:00"}
	assert.True(t, closed.IsClosed())
}

func TestStaffScheduleIsAvailable(t *testing.T) {
	working := &StaffSchedule{Weekday: 0, OpenTime: "09:00", CloseTime: "17:00", IsWorking: true}
	assert.True(t, working.IsAvailable())

	dayOff := &StaffSchedule{Weekday: 0, OpenTime: "09:00", CloseTime: "17:00", IsWorking: false}
	assert.False(t, dayOff.IsAvailable())

	emptyWindow := &StaffSchedule{Weekday: 0, OpenTime: "09:00", CloseTime: "09:00", IsWorking: true}
	assert.False(t, emptyWindow.IsAvailable())
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range ValidStatuses {
		assert.True(t, IsValidStatus(status))
	}
	assert.False(t, IsValidStatus("rescheduled"))
	assert.False(t, IsValidStatus(""))
}

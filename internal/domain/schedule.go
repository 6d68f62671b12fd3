package domain

import (
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

// Weekday день недели, 0=понедельник .. 6=воскресенье
// Отличается от time.Weekday, где воскресенье = 0
type Weekday int

// WeekdayOf возвращает день недели даты в нумерации 0=понедельник
func WeekdayOf(date time.Time) Weekday {
	return Weekday((int(date.Weekday()) + 6) % 7)
}

// BusinessHours окно работы салона для одного дня недели
// День с OpenTime == CloseTime считается выходным
type BusinessHours struct {
	ID          int64
	Weekday     Weekday
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	SlotMinutes int
}

// IsClosed возвращает true, если окно пустое
func (h *BusinessHours) IsClosed() bool {
	return h.OpenTime == h.CloseTime
}

// StaffSchedule рабочее окно сотрудника для одного дня недели
type StaffSchedule struct {
	ID        int64
	StaffID   int64
	Weekday   Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsWorking bool
	CreatedAt time.Time
}

// IsAvailable возвращает true, если сотрудник действительно работает в этот день
// is_working=false и пустое окно одинаково означают недоступность
func (s *StaffSchedule) IsAvailable() bool {
	return s.IsWorking && s.OpenTime != s.CloseTime
}

// Holiday календарная дата, в которую записи запрещены
type Holiday struct {
	ID     int64
	Date   time.Time
	Reason *string
}

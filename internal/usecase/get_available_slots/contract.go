package get_available_slots

import (
	"context"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	// ListQualifiedStaffIDs получает ID сотрудников с активной квалификацией на услугу,
	// без дубликатов, по возрастанию ID
	ListQualifiedStaffIDs(ctx context.Context, serviceID int64) ([]int64, error)
}

// ScheduleRepository интерфейс репозитория расписаний сотрудников
type ScheduleRepository interface {
	GetByStaffAndWeekday(ctx context.Context, staffID int64, weekday domain.Weekday) (*domain.StaffSchedule, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

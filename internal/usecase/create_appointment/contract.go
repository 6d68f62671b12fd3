package create_appointment

import (
	"context"
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	GetBusinessHoursByWeekday(ctx context.Context, weekday domain.Weekday) (*domain.BusinessHours, error)
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TransactionManager интерфейс менеджера транзакций
// Проверка занятости и запись должны выполняться атомарно
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений о новых записях
// Отправка best-effort, ошибки не влияют на результат операции
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

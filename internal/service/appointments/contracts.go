package appointments

import (
	"context"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// Notifier интерфейс отправки уведомлений о смене статуса записи
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

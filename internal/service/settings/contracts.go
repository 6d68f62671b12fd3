package settings

import (
	"context"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	GetBusinessHours(ctx context.Context) ([]*domain.BusinessHours, error)
	ReplaceBusinessHours(ctx context.Context, hours []*domain.BusinessHours) error
	GetHolidays(ctx context.Context) ([]*domain.Holiday, error)
	ReplaceHolidays(ctx context.Context, holidays []*domain.Holiday) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

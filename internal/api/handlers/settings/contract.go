package settings

import (
	"context"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/settings/models"
)

type SettingsService interface {
	GetBusinessHours(ctx context.Context) (*models.BusinessHoursResponse, error)
	ReplaceBusinessHours(ctx context.Context, req *models.ReplaceBusinessHoursRequest) (*models.BusinessHoursResponse, error)
	GetHolidays(ctx context.Context) (*models.HolidaysResponse, error)
	ReplaceHolidays(ctx context.Context, req *models.ReplaceHolidaysRequest) (*models.HolidaysResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

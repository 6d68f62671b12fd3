package catalog

import (
	"context"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Deactivate(ctx context.Context, id int64) error
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, st *domain.Staff) (*domain.Staff, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	ListActive(ctx context.Context) ([]*domain.Staff, error)
	Update(ctx context.Context, st *domain.Staff) error
	Deactivate(ctx context.Context, id int64) error
	AssignService(ctx context.Context, edge *domain.StaffService) (*domain.StaffService, error)
	ListServices(ctx context.Context, staffID int64) ([]*domain.StaffService, error)
}

// ScheduleRepository интерфейс репозитория расписаний сотрудников
type ScheduleRepository interface {
	GetByStaff(ctx context.Context, staffID int64) ([]*domain.StaffSchedule, error)
	ReplaceForStaff(ctx context.Context, staffID int64, entries []*domain.StaffSchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

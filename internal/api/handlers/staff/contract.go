package staff

import (
	"context"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/catalog/models"
)

type CatalogService interface {
	CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error)
	GetStaff(ctx context.Context, id int64) (*models.StaffResponse, error)
	ListStaff(ctx context.Context) (*models.StaffListResponse, error)
	UpdateStaff(ctx context.Context, id int64, req *models.UpdateStaffRequest) (*models.StaffResponse, error)
	DeactivateStaff(ctx context.Context, id int64) error
	AssignService(ctx context.Context, staffID int64, req *models.AssignServiceRequest) (*models.StaffServiceResponse, error)
	ListStaffServices(ctx context.Context, staffID int64) (*models.StaffServiceListResponse, error)
	GetStaffSchedule(ctx context.Context, staffID int64) (*models.ScheduleResponse, error)
	ReplaceStaffSchedule(ctx context.Context, staffID int64, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

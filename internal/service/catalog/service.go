package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	scheduleRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/schedule"
	serviceRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/service"
	staffRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/staff"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг и сотрудников
type Service struct {
	serviceRepo  ServiceRepository
	staffRepo    StaffRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Услуги

// CreateService создает новую услугу
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service name=%s, duration=%d", req.Name, req.DurationMinutes)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("CreateService: empty name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		s.logger.Warn("CreateService: non-positive duration=%d", req.DurationMinutes)
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.Price != nil && *req.Price < 0 {
		s.logger.Warn("CreateService: negative price=%f", *req.Price)
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        true,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// GetService получает услугу по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(service), nil
}

// ListServices получает все активные услуги
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// UpdateService обновляет услугу
// nil-поля запроса не изменяются
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%d", id)

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		service.Description = req.Description
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
		}
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
		}
		service.Price = req.Price
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", id)
	return models.FromDomainService(service), nil
}

// DeactivateService деактивирует услугу
// Физическое удаление не поддерживается, услуга скрывается из выдачи
func (s *Service) DeactivateService(ctx context.Context, id int64) error {
	s.logger.Info("DeactivateService: deactivating service id=%d", id)

	if err := s.serviceRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("DeactivateService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeactivateService: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: DeactivateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateService: successfully deactivated service id=%d", id)
	return nil
}

// Сотрудники

// CreateStaff создает нового сотрудника
func (s *Service) CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("CreateStaff: creating staff name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("CreateStaff: empty name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.staffRepo.Create(ctx, &domain.Staff{
		Name:     strings.TrimSpace(req.Name),
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	})
	if err != nil {
		s.logger.Error("CreateStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: successfully created staff id=%d", created.ID)
	return models.FromDomainStaff(created), nil
}

// GetStaff получает сотрудника по ID
func (s *Service) GetStaff(ctx context.Context, id int64) (*models.StaffResponse, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetStaff: staff id=%d not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaff: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetStaff - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaff(staff), nil
}

// ListStaff получает всех активных сотрудников
func (s *Service) ListStaff(ctx context.Context) (*models.StaffListResponse, error) {
	staff, err := s.staffRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaffList(staff), nil
}

// UpdateStaff обновляет сотрудника
func (s *Service) UpdateStaff(ctx context.Context, id int64, req *models.UpdateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("UpdateStaff: updating staff id=%d", id)

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateStaff: staff id=%d not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateStaff: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStaff - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		staff.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		staff.Phone = req.Phone
	}
	if req.Email != nil {
		staff.Email = req.Email
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateStaff: repository error for staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStaff: successfully updated staff id=%d", id)
	return models.FromDomainStaff(staff), nil
}

// DeactivateStaff деактивирует сотрудника
func (s *Service) DeactivateStaff(ctx context.Context, id int64) error {
	s.logger.Info("DeactivateStaff: deactivating staff id=%d", id)

	if err := s.staffRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("DeactivateStaff: staff id=%d not found", id)
			return ErrStaffNotFound
		}
		s.logger.Error("DeactivateStaff: repository error for staff id=%d: %v", id, err)
		return fmt.Errorf("%w: DeactivateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateStaff: successfully deactivated staff id=%d", id)
	return nil
}

// Квалификации

// AssignService привязывает услугу к сотруднику
// Сотрудник и услуга должны существовать
func (s *Service) AssignService(ctx context.Context, staffID int64, req *models.AssignServiceRequest) (*models.StaffServiceResponse, error) {
	s.logger.Info("AssignService: assigning service=%d to staff=%d", req.ServiceID, staffID)

	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("AssignService: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("AssignService: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: AssignService - repository error: %v", ErrInternal, err)
	}

	if _, err := s.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("AssignService: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("AssignService: repository error for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: AssignService - repository error: %v", ErrInternal, err)
	}

	edge, err := s.staffRepo.AssignService(ctx, &domain.StaffService{
		StaffID:   staffID,
		ServiceID: req.ServiceID,
		IsActive:  true,
	})
	if err != nil {
		s.logger.Error("AssignService: repository error: %v", err)
		return nil, fmt.Errorf("%w: AssignService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AssignService: successfully assigned service=%d to staff=%d", req.ServiceID, staffID)
	return models.FromDomainStaffService(edge), nil
}

// ListStaffServices получает услуги, закреплённые за сотрудником
func (s *Service) ListStaffServices(ctx context.Context, staffID int64) (*models.StaffServiceListResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("ListStaffServices: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("ListStaffServices: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListStaffServices - repository error: %v", ErrInternal, err)
	}

	edges, err := s.staffRepo.ListServices(ctx, staffID)
	if err != nil {
		s.logger.Error("ListStaffServices: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListStaffServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaffServiceList(edges), nil
}

// Расписания

// GetStaffSchedule получает расписание сотрудника по дням недели
func (s *Service) GetStaffSchedule(ctx context.Context, staffID int64) (*models.ScheduleResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetStaffSchedule: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaffSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffSchedule - repository error: %v", ErrInternal, err)
	}

	entries, err := s.scheduleRepo.GetByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("GetStaffSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffSchedule - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSchedules(entries), nil
}

// ReplaceStaffSchedule полностью заменяет расписание сотрудника
// Дни недели в наборе не должны повторяться, рабочие окна не должны быть пустыми
func (s *Service) ReplaceStaffSchedule(ctx context.Context, staffID int64, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceStaffSchedule: replacing schedule for staff=%d, entries=%d", staffID, len(req.Entries))

	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("ReplaceStaffSchedule: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("ReplaceStaffSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ReplaceStaffSchedule - repository error: %v", ErrInternal, err)
	}

	entries, err := req.ToDomainSchedules(staffID)
	if err != nil {
		s.logger.Warn("ReplaceStaffSchedule: invalid entries for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateScheduleEntries(entries); err != nil {
		s.logger.Warn("ReplaceStaffSchedule: invalid schedule set for staff=%d: %v", staffID, err)
		return nil, err
	}

	if err := s.scheduleRepo.ReplaceForStaff(ctx, staffID, entries); err != nil {
		if errors.Is(err, scheduleRepo.ErrDuplicateWeekday) {
			return nil, fmt.Errorf("%w: duplicate weekday", ErrInvalidSchedule)
		}
		s.logger.Error("ReplaceStaffSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ReplaceStaffSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceStaffSchedule: successfully replaced schedule for staff=%d", staffID)
	return models.FromDomainSchedules(entries), nil
}

// validateScheduleEntries проверяет набор расписаний перед записью
func validateScheduleEntries(entries []*domain.StaffSchedule) error {
	seen := make(map[domain.Weekday]bool, len(entries))
	for _, e := range entries {
		if e.Weekday < 0 || e.Weekday > 6 {
			return fmt.Errorf("%w: weekday %d out of range", ErrInvalidSchedule, e.Weekday)
		}
		if seen[e.Weekday] {
			return fmt.Errorf("%w: duplicate weekday %d", ErrInvalidSchedule, e.Weekday)
		}
		seen[e.Weekday] = true
		// Рабочий день требует непустого окна, выходной может иметь любое
		if e.IsWorking && !e.OpenTime.IsBefore(e.CloseTime) {
			return fmt.Errorf("%w: empty working window on weekday %d", ErrInvalidSchedule, e.Weekday)
		}
	}
	return nil
}

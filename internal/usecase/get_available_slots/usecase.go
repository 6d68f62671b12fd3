package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	scheduleRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/schedule"
	serviceRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов на дату и услугу
// Чисто читающая операция, безопасно повторяемая; состояние не изменяет
type UseCase struct {
	serviceRepo     ServiceRepository
	staffRepo       StaffRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу: она должна существовать и быть активной
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrInvalidService
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrInvalidService
	}

	// 3. Получаем квалифицированных сотрудников (без дубликатов, по возрастанию ID)
	staffIDs, err := uc.staffRepo.ListQualifiedStaffIDs(ctx, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list qualified staff for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to list qualified staff: %v", ErrInternal, err)
	}
	staffIDs = dedupeStaffIDs(staffIDs)

	// Отсутствие квалифицированных сотрудников — валидный пустой результат, не ошибка
	if len(staffIDs) == 0 {
		uc.logger.Info("GetAvailableSlots: no qualified staff for service id=%d", req.ServiceID)
		return &Response{
			Date:            req.Date,
			ServiceID:       req.ServiceID,
			ServiceName:     service.Name,
			DurationMinutes: service.DurationMinutes,
			Slots:           []domain.SlotCandidate{},
			Message:         NoStaffMessage,
		}, nil
	}

	weekday := domain.WeekdayOf(req.Date)
	allSlots := make([]domain.SlotCandidate, 0)

	// 4. Для каждого сотрудника генерируем слоты из его расписания на этот день недели
	for _, staffID := range staffIDs {
		schedule, err := uc.scheduleRepo.GetByStaffAndWeekday(ctx, staffID, weekday)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				// Нет расписания на этот день — сотрудник пропускается
				continue
			}
			uc.logger.Error("GetAvailableSlots: failed to get schedule for staff id=%d: %v", staffID, err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// is_working=false или пустое окно — сотрудник недоступен в этот день
		if !schedule.IsAvailable() {
			continue
		}

		// 5. Получаем неотменённые записи сотрудника на эту дату
		busy, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
			Date:            &req.Date,
			StaffID:         &staffID,
			ExcludeCanceled: true,
		})
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list appointments for staff id=%d: %v", staffID, err)
			return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		staffSlots, err := generateStaffSlots(schedule, req.ServiceID, service.DurationMinutes, busy)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to generate slots for staff id=%d: %v", staffID, err)
			return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		allSlots = append(allSlots, staffSlots...)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, date=%s",
		len(allSlots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           allSlots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

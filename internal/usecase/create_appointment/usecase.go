package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	appointmentRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/appointment"
	serviceRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/service"
	settingsRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/settings"
)

// UseCase use case для создания записи клиента
// Проверка занятости и вставка выполняются в сериализуемой транзакции,
// уникальный индекс в БД остаётся страховкой от гонки двух запросов
type UseCase struct {
	serviceRepo     ServiceRepository
	settingsRepo    SettingsRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		settingsRepo:    settingsRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Порядок проверок фиксирован: разбор входа, услуга, часы работы,
// выходные, пересечения. Первая неудавшаяся проверка завершает запрос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбор и валидация формы входных данных
	c, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: customer=%s, date=%s, slot=[%s, %s), service=%d, staff=%d",
		c.customerName, c.date.Format(domain.DateFormat), c.startTime, c.endTime, c.serviceID, c.staffID)

	// 2. Услуга должна существовать и быть активной
	service, err := uc.serviceRepo.GetByID(ctx, c.serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", c.serviceID)
			return nil, ErrInvalidService
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", c.serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", c.serviceID)
		return nil, ErrInvalidService
	}

	var created *domain.Appointment

	// 3-6. Бизнес-проверки и вставка в одной сериализуемой транзакции
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Часы работы на день недели даты
		hours, err := uc.settingsRepo.GetBusinessHoursByWeekday(txCtx, domain.WeekdayOf(c.date))
		if err != nil {
			if errors.Is(err, settingsRepo.ErrBusinessHoursNotFound) {
				return ErrShopClosed
			}
			return fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
		}
		if hours.IsClosed() {
			return ErrShopClosed
		}

		// 4. Интервал записи целиком внутри часов работы
		if !withinBusinessHours(c, hours) {
			return ErrOutsideBusinessHours
		}

		// 5. Дата не должна быть выходным днём
		holiday, err := uc.settingsRepo.IsHoliday(txCtx, c.date)
		if err != nil {
			return fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
		}
		if holiday {
			return ErrHoliday
		}

		// 6. Пересечения со всеми неотменёнными записями на эту дату,
		// независимо от сотрудника
		existing, err := uc.appointmentRepo.List(txCtx, domain.AppointmentsFilter{
			Date:            &c.date,
			ExcludeCanceled: true,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}
		for _, ap := range existing {
			if domain.Overlaps(c.startTime, c.endTime, ap.StartTime, ap.EndTime) {
				return ErrSlotConflict
			}
		}

		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerName:  c.customerName,
			CustomerPhone: c.customerPhone,
			Date:          c.date,
			StartTime:     c.startTime,
			EndTime:       c.endTime,
			ServiceID:     c.serviceID,
			StaffID:       c.staffID,
			Status:        domain.StatusPending,
			Note:          c.note,
		})
		if err != nil {
			// Гонка двух запросов разрешается уникальным индексом
			if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
				return ErrSlotConflict
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if txErr != nil {
		if !isBusinessError(txErr) {
			uc.logger.Error("CreateAppointment: transaction failed: %v", txErr)
		}
		return nil, txErr
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d", created.ID)

	// 7. Уведомление best-effort, ошибка не влияет на результат
	message := fmt.Sprintf("New booking: %s, %s %s-%s (service %s, staff #%d)",
		created.CustomerName, created.Date.Format(domain.DateFormat),
		created.StartTime, created.EndTime, service.Name, created.StaffID)
	if err := uc.notifier.Send(ctx, message); err != nil {
		uc.logger.Warn("CreateAppointment: failed to send notification for appointment id=%d: %v", created.ID, err)
	}

	return &Response{Appointment: created}, nil
}

// isBusinessError отличает отказ бизнес-проверки от внутренней ошибки
func isBusinessError(err error) bool {
	return errors.Is(err, ErrShopClosed) ||
		errors.Is(err, ErrOutsideBusinessHours) ||
		errors.Is(err, ErrHoliday) ||
		errors.Is(err, ErrSlotConflict)
}

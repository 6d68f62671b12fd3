package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	appointmentRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/appointment"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/appointments/models"
)

// Service сервис для административной работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// List получает записи с гибкой фильтрацией
// Поддерживает фильтрацию по дате, периоду, сотруднику и статусу
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, date=%v, staff=%v, status=%v",
		req.Date, req.StaffID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// Confirm подтверждает запись
// Повторное подтверждение уже подтверждённой записи не ошибка,
// но уведомление отправляется заново
func (s *Service) Confirm(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	return s.transition(ctx, id, domain.StatusConfirmed, "Confirm")
}

// Cancel отменяет запись
// Отмена уже отменённой или завершённой записи не ошибка
func (s *Service) Cancel(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	return s.transition(ctx, id, domain.StatusCanceled, "Cancel")
}

// transition переводит запись в новый статус и уведомляет best-effort
func (s *Service) transition(ctx context.Context, id int64, status domain.AppointmentStatus, op string) (*models.AppointmentResponse, error) {
	s.logger.Info("%s: updating appointment id=%d to status=%s", op, id, status)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found during update", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	appointment.Status = status

	// Уведомление best-effort, ошибка не влияет на результат
	message := fmt.Sprintf("Booking %s: %s, %s %s-%s (staff #%d)",
		status, appointment.CustomerName, appointment.Date.Format(domain.DateFormat),
		appointment.StartTime, appointment.EndTime, appointment.StaffID)
	if err := s.notifier.Send(ctx, message); err != nil {
		s.logger.Warn("%s: failed to send notification for appointment id=%d: %v", op, id, err)
	}

	s.logger.Info("%s: successfully updated appointment id=%d to status=%s", op, id, status)
	return models.FromDomainAppointment(appointment), nil
}

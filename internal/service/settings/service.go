package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	settingsRepo "github.com/suphotsudsee/queue-booking-app-v2/internal/infra/storage/settings"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/settings/models"
)

// Service сервис для работы с настройками салона
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetBusinessHours получает часы работы салона по дням недели
func (s *Service) GetBusinessHours(ctx context.Context) (*models.BusinessHoursResponse, error) {
	hours, err := s.settingsRepo.GetBusinessHours(ctx)
	if err != nil {
		s.logger.Error("GetBusinessHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBusinessHours - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHours(hours), nil
}

// ReplaceBusinessHours полностью заменяет часы работы салона
// Дни недели в наборе не должны повторяться
func (s *Service) ReplaceBusinessHours(ctx context.Context, req *models.ReplaceBusinessHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("ReplaceBusinessHours: replacing business hours, entries=%d", len(req.Entries))

	hours, err := req.ToDomainHours()
	if err != nil {
		s.logger.Warn("ReplaceBusinessHours: invalid entries: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateHours(hours); err != nil {
		s.logger.Warn("ReplaceBusinessHours: invalid hours set: %v", err)
		return nil, err
	}

	if err := s.settingsRepo.ReplaceBusinessHours(ctx, hours); err != nil {
		if errors.Is(err, settingsRepo.ErrDuplicateWeekday) {
			return nil, fmt.Errorf("%w: duplicate weekday", ErrInvalidHours)
		}
		s.logger.Error("ReplaceBusinessHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ReplaceBusinessHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceBusinessHours: successfully replaced business hours")
	return models.FromDomainHours(hours), nil
}

// GetHolidays получает список выходных дней
func (s *Service) GetHolidays(ctx context.Context) (*models.HolidaysResponse, error) {
	holidays, err := s.settingsRepo.GetHolidays(ctx)
	if err != nil {
		s.logger.Error("GetHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetHolidays - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHolidays(holidays), nil
}

// ReplaceHolidays полностью заменяет список выходных дней
func (s *Service) ReplaceHolidays(ctx context.Context, req *models.ReplaceHolidaysRequest) (*models.HolidaysResponse, error) {
	s.logger.Info("ReplaceHolidays: replacing holidays, entries=%d", len(req.Entries))

	holidays, err := req.ToDomainHolidays()
	if err != nil {
		s.logger.Warn("ReplaceHolidays: invalid entries: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.ReplaceHolidays(ctx, holidays); err != nil {
		s.logger.Error("ReplaceHolidays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ReplaceHolidays - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceHolidays: successfully replaced holidays")
	return models.FromDomainHolidays(holidays), nil
}

// validateHours проверяет набор часов работы перед записью
// Пустое окно (open == close) допустимо и означает выходной день недели
func validateHours(hours []*domain.BusinessHours) error {
	seen := make(map[domain.Weekday]bool, len(hours))
	for _, h := range hours {
		if h.Weekday < 0 || h.Weekday > 6 {
			return fmt.Errorf("%w: weekday %d out of range", ErrInvalidHours, h.Weekday)
		}
		if seen[h.Weekday] {
			return fmt.Errorf("%w: duplicate weekday %d", ErrInvalidHours, h.Weekday)
		}
		seen[h.Weekday] = true
		if h.CloseTime.IsBefore(h.OpenTime) {
			return fmt.Errorf("%w: close before open on weekday %d", ErrInvalidHours, h.Weekday)
		}
		if h.SlotMinutes <= 0 {
			return fmt.Errorf("%w: slotMinutes must be positive on weekday %d", ErrInvalidHours, h.Weekday)
		}
	}
	return nil
}

package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

// parseRequest разбирает и валидирует входные данные запроса
// Ошибки разбора возвращаются до любых бизнес-проверок
func parseRequest(req *Request) (*candidate, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q: %v", ErrInvalidInput, req.Date, err)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time %q: %v", ErrInvalidInput, req.StartTime, err)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time %q: %v", ErrInvalidInput, req.EndTime, err)
	}

	if err := domain.ValidateInterval(startTime, endTime); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &candidate{
		customerName:  strings.TrimSpace(req.CustomerName),
		customerPhone: strings.TrimSpace(req.CustomerPhone),
		date:          date,
		startTime:     startTime,
		endTime:       endTime,
		serviceID:     req.ServiceID,
		staffID:       req.StaffID,
		note:          req.Note,
	}, nil
}

// withinBusinessHours проверяет, что интервал целиком лежит в часах работы:
// open <= start и end <= close
func withinBusinessHours(c *candidate, hours *domain.BusinessHours) bool {
	if c.startTime.IsBefore(hours.OpenTime) {
		return false
	}
	if hours.CloseTime.IsBefore(c.endTime) {
		return false
	}
	return true
}

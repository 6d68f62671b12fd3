package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	appointmentsService "github.com/suphotsudsee/queue-booking-app-v2/internal/service/appointments"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/appointments/models"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidFilter  = "некорректные параметры фильтрации"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: date, dateFrom, dateTo (YYYY-MM-DD), staffId, status, excludeCanceled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}
	query := r.URL.Query()

	for param, dst := range map[string]**time.Time{
		"date":     &req.Date,
		"dateFrom": &req.DateFrom,
		"dateTo":   &req.DateTo,
	} {
		if value := query.Get(param); value != "" {
			parsed, err := time.Parse(domain.DateFormat, value)
			if err != nil {
				h.logger.Warn("GET /admin/appointments - Invalid %s: %v", param, err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			*dst = &parsed
		}
	}

	if value := query.Get("staffId"); value != "" {
		staffID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		req.StaffID = &staffID
	}

	if value := query.Get("status"); value != "" {
		req.Status = &value
	}

	req.ExcludeCanceled = query.Get("excludeCanceled") == "true"

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package settings

import (
	"errors"
	"net/http"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers"
	settingsService "github.com/suphotsudsee/queue-booking-app-v2/internal/service/settings"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHoursData   = "некорректные данные часов работы"
	msgInvalidHolidayData = "некорректные данные выходных дней"
)

type Handler struct {
	settings SettingsService
	logger   Logger
}

func NewHandler(settings SettingsService, logger Logger) *Handler {
	return &Handler{
		settings: settings,
		logger:   logger,
	}
}

// HandleGetBusinessHours GET /api/v1/settings/business-hours
func (h *Handler) HandleGetBusinessHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.settings.GetBusinessHours(r.Context())
	if err != nil {
		h.logger.Error("GET /settings/business-hours - Failed to get business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleReplaceBusinessHours PUT /api/v1/admin/settings/business-hours
// Часы работы заменяются целиком
func (h *Handler) HandleReplaceBusinessHours(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.settings.ReplaceBusinessHours(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput), errors.Is(err, settingsService.ErrInvalidHours):
			h.logger.Warn("PUT /admin/settings/business-hours - Invalid hours data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHoursData)

		default:
			h.logger.Error("PUT /admin/settings/business-hours - Failed to replace business hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/business-hours - Business hours replaced successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetHolidays GET /api/v1/settings/holidays
func (h *Handler) HandleGetHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.settings.GetHolidays(r.Context())
	if err != nil {
		h.logger.Error("GET /settings/holidays - Failed to get holidays: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleReplaceHolidays PUT /api/v1/admin/settings/holidays
// Список выходных заменяется целиком
func (h *Handler) HandleReplaceHolidays(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceHolidaysRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.settings.ReplaceHolidays(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/settings/holidays - Invalid holiday data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHolidayData)

		default:
			h.logger.Error("PUT /admin/settings/holidays - Failed to replace holidays: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/holidays - Holidays replaced successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}

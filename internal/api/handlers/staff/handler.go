package staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/api/handlers"
	catalogService "github.com/suphotsudsee/queue-booking-app-v2/internal/service/catalog"
	"github.com/suphotsudsee/queue-booking-app-v2/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStaffID      = "некорректный ID сотрудника"
	msgInvalidStaffData    = "некорректные данные сотрудника"
	msgInvalidScheduleData = "некорректные данные расписания"
	msgStaffNotFound       = "сотрудник не найден"
	msgServiceNotFound     = "услуга не найдена"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// HandleList GET /api/v1/staff
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.ListStaff(r.Context())
	if err != nil {
		h.logger.Error("GET /staff - Failed to list staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/staff/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	result, err := h.catalog.GetStaff(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id} - Staff not found: staff_id=%d", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /staff/{id} - Failed to get staff: staff_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/staff
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.CreateStaff(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /admin/staff - Invalid staff data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffData)

		default:
			h.logger.Error("POST /admin/staff - Failed to create staff: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/staff - Staff created successfully: staff_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/staff/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	var req models.UpdateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/staff/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.UpdateStaff(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("PUT /admin/staff/{id} - Staff not found: staff_id=%d", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/staff/{id} - Invalid staff data: staff_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidStaffData)

		default:
			h.logger.Error("PUT /admin/staff/{id} - Failed to update staff: staff_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/staff/{id} - Staff updated successfully: staff_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/staff/{id}
// Сотрудник деактивируется, физическое удаление не поддерживается
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeactivateStaff(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("DELETE /admin/staff/{id} - Staff not found: staff_id=%d", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("DELETE /admin/staff/{id} - Failed to deactivate staff: staff_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/staff/{id} - Staff deactivated successfully: staff_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleAssignService POST /api/v1/admin/staff/{id}/services
func (h *Handler) HandleAssignService(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	var req models.AssignServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/staff/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.AssignService(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("POST /admin/staff/{id}/services - Staff not found: staff_id=%d", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("POST /admin/staff/{id}/services - Service not found: staff_id=%d, service_id=%d", id, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /admin/staff/{id}/services - Failed to assign service: staff_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/staff/{id}/services - Service assigned successfully: staff_id=%d, service_id=%d", id, req.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleListServices GET /api/v1/staff/{id}/services
func (h *Handler) HandleListServices(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	result, err := h.catalog.ListStaffServices(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/services - Staff not found: staff_id=%d", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /staff/{id}/services - Failed to list staff services: staff_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetSchedule GET /api/v1/staff/{id}/schedule
func (h *Handler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	result, err := h.catalog.GetStaffSchedule(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/schedule - Staff not found: staff_id=%d", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /staff/{id}/schedule - Failed to get schedule: staff_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleReplaceSchedule PUT /api/v1/admin/staff/{id}/schedule
// Расписание заменяется целиком
func (h *Handler) HandleReplaceSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	var req models.ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/staff/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.catalog.ReplaceStaffSchedule(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("PUT /admin/staff/{id}/schedule - Staff not found: staff_id=%d", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalogService.ErrInvalidInput), errors.Is(err, catalogService.ErrInvalidSchedule):
			h.logger.Warn("PUT /admin/staff/{id}/schedule - Invalid schedule data: staff_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidScheduleData)

		default:
			h.logger.Error("PUT /admin/staff/{id}/schedule - Failed to replace schedule: staff_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/staff/{id}/schedule - Schedule replaced successfully: staff_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) staffID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("%s %s - Invalid staff ID: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return 0, false
	}
	return id, true
}

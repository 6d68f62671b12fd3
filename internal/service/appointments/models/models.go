package models

import (
	"errors"
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе записи
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение записей с фильтрацией
type ListAppointmentsRequest struct {
	DateFrom        *time.Time `json:"dateFrom,omitempty"`        // Начало периода (опционально)
	DateTo          *time.Time `json:"dateTo,omitempty"`          // Конец периода (опционально)
	Date            *time.Time `json:"date,omitempty"`            // Конкретная дата (опционально)
	StaffID         *int64     `json:"staffId,omitempty"`         // Фильтр по сотруднику (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	ExcludeCanceled bool       `json:"excludeCanceled,omitempty"` // Исключить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		DateFrom:        r.DateFrom,
		DateTo:          r.DateTo,
		Date:            r.Date,
		StaffID:         r.StaffID,
		ExcludeCanceled: r.ExcludeCanceled,
	}

	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		if !domain.IsValidStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`      // "2026-03-14"
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`   // "10:30"
	ServiceID     int64   `json:"serviceId"`
	StaffID       int64   `json:"staffId"`
	Status        string  `json:"status"`
	Note          *string `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:            a.ID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		Date:          a.Date.Format(domain.DateFormat),
		StartTime:     a.StartTime.String(),
		EndTime:       a.EndTime.String(),
		ServiceID:     a.ServiceID,
		StaffID:       a.StaffID,
		Status:        string(a.Status),
		Note:          a.Note,
		CreatedAt:     a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if r := FromDomainAppointment(a); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}

	return resp
}

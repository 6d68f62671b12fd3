package create_appointment

import (
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	createAppointment "github.com/suphotsudsee/queue-booking-app-v2/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`      // "2026-03-14"
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`   // "10:30"
	ServiceID     int64   `json:"serviceId"`
	StaffID       int64   `json:"staffId"`
	Note          *string `json:"note,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	ServiceID     int64   `json:"serviceId"`
	StaffID       int64   `json:"staffId"`
	Status        string  `json:"status"`
	Note          *string `json:"note,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Разбор даты и времени выполняет сам use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		ServiceID:     r.ServiceID,
		StaffID:       r.StaffID,
		Note:          r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	a := resp.Appointment
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
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

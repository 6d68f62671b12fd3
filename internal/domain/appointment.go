package domain

import (
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

// AppointmentStatus статус жизненного цикла записи
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Appointment запись клиента на услугу к сотруднику
type Appointment struct {
	ID            int64
	CustomerName  string
	CustomerPhone string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	ServiceID     int64
	StaffID       int64
	Status        AppointmentStatus
	Note          *string

	CreatedAt time.Time
}

// IsCanceled возвращает true, если запись отменена
// Отменённые записи не участвуют в проверках пересечений и доступности
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	DateFrom        *time.Time         // Начало периода (опционально)
	DateTo          *time.Time         // Конец периода (опционально)
	Date            *time.Time         // Конкретная дата (опционально)
	StaffID         *int64             // Фильтр по сотруднику (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	ExcludeCanceled bool               // Исключить отменённые записи
}

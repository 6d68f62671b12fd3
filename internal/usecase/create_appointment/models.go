package create_appointment

import (
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

// Request модель запроса на создание записи
// Дата и времена приходят текстом и разбираются до бизнес-проверок
type Request struct {
	CustomerName  string  // Имя клиента
	CustomerPhone string  // Телефон клиента
	Date          string  // Дата в формате YYYY-MM-DD
	StartTime     string  // Время начала в формате HH:MM
	EndTime       string  // Время окончания в формате HH:MM
	ServiceID     int64   // ID услуги
	StaffID       int64   // ID сотрудника
	Note          *string // Комментарий клиента (опционально)
}

// candidate разобранный и проверенный на форму кандидат записи
type candidate struct {
	customerName  string
	customerPhone string
	date          time.Time
	startTime     types.TimeString
	endTime       types.TimeString
	serviceID     int64
	staffID       int64
	note          *string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}

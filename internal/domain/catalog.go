package domain

import "time"

// Service услуга, на которую можно записаться (стрижка, маникюр, ...)
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           *float64
	IsActive        bool
	CreatedAt       time.Time
}

// Staff сотрудник, оказывающий услуги
type Staff struct {
	ID        int64
	Name      string
	Phone     *string
	Email     *string
	IsActive  bool
	CreatedAt time.Time
}

// StaffService связывает сотрудника с услугой, которую он умеет выполнять
// Деактивация связи мягко отзывает квалификацию
type StaffService struct {
	ID        int64
	StaffID   int64
	ServiceID int64
	IsActive  bool
	CreatedAt time.Time
}

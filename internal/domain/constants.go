package domain

// DateFormat формат даты во входных данных и в БД
const DateFormat = "2006-01-02" // YYYY-MM-DD

// DefaultSlotMinutes шаг сетки слотов по умолчанию
const DefaultSlotMinutes = 30

// ValidStatuses список допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
}

// IsValidStatus проверяет, что статус входит в число допустимых
func IsValidStatus(s AppointmentStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

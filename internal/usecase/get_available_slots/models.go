package get_available_slots

import (
	"time"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
)

// NoStaffMessage маркер ответа, когда ни один сотрудник не выполняет услугу
// Это валидный результат "нет доступности", а не ошибка
const NoStaffMessage = "No staff available for this service"

// Request модель запроса на получение доступных слотов
type Request struct {
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
	ServiceID int64     // ID услуги
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time              // Дата, на которую запрашивались слоты
	ServiceID       int64                  // ID услуги
	ServiceName     string                 // Название услуги
	DurationMinutes int                    // Длительность услуги в минутах
	Slots           []domain.SlotCandidate // Слоты в детерминированном порядке
	Message         string                 // Пояснение для пустого результата (опционально)
}

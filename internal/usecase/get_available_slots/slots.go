package get_available_slots

import (
	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

// generateStaffSlots генерирует кандидатов слотов для одного сотрудника
// Окно сотрудника обходится с фиксированным шагом, равным длительности услуги;
// сеточный шаг из часов работы салона здесь не используется — окно задаёт
// расписание сотрудника, а не общие часы салона.
// Слот [t, t+duration) эмитится, пока t+duration <= close.
// Услуга длиннее окна даёт ноль кандидатов, это не ошибка
func generateStaffSlots(
	schedule *domain.StaffSchedule,
	serviceID int64,
	durationMinutes int,
	busy []*domain.Appointment,
) ([]domain.SlotCandidate, error) {
	slots := make([]domain.SlotCandidate, 0)

	current := schedule.OpenTime
	for {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		// Переход через полночь завершает обход
		if !current.IsBefore(slotEnd) {
			break
		}
		// Слот должен целиком помещаться в окно: t+duration <= close
		if schedule.CloseTime.IsBefore(slotEnd) {
			break
		}

		slots = append(slots, domain.SlotCandidate{
			StartTime:       current,
			EndTime:         slotEnd,
			Available:       !overlapsAny(current, slotEnd, busy),
			StaffID:         schedule.StaffID,
			ServiceID:       serviceID,
			DurationMinutes: durationMinutes,
		})

		current = slotEnd
	}

	return slots, nil
}

// overlapsAny проверяет пересечение кандидата с существующими записями
// Отменённые записи в busy не попадают (фильтруются на уровне выборки)
func overlapsAny(start, end types.TimeString, busy []*domain.Appointment) bool {
	for _, ap := range busy {
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	return false
}

// dedupeStaffIDs схлопывает дубликаты ID сотрудников, сохраняя порядок
// Хранилище допускает дубликаты связей сотрудник-услуга, выдача — нет
func dedupeStaffIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

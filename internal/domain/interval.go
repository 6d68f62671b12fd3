package domain

import (
	"errors"
	"fmt"

	"github.com/suphotsudsee/queue-booking-app-v2/pkg/types"
)

var (
	// ErrInvalidInterval возвращается при попытке сконструировать пустой или отрицательный интервал
	ErrInvalidInterval = errors.New("domain: interval end must be after start")
)

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Пересечение есть только если max(aStart, bStart) < min(aEnd, bEnd)
// Граничные случаи (aEnd == bStart) пересечением НЕ считаются
//
// Примеры:
//   - [09:00, 10:00) и [09:30, 10:30) → пересекаются
//   - [09:00, 10:00) и [10:00, 11:00) → не пересекаются (граничат)
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return bStart.IsBefore(aEnd) && aStart.IsBefore(bEnd)
}

// ValidateInterval проверяет, что интервал имеет положительную длину
// Вызывающий код не должен конструировать пустые или отрицательные интервалы
func ValidateInterval(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return err
	}
	if err := end.Validate(); err != nil {
		return err
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, start, end)
	}
	return nil
}

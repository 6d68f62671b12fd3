package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/dbmetrics"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками салона:
// часами работы и праздничными днями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessHours получает часы работы на все дни недели
func (r *Repository) GetBusinessHours(ctx context.Context) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "open_time", "close_time", "slot_minutes").
		From("business_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		var h domain.BusinessHours
		if err := rows.Scan(&h.ID, &h.Weekday, &h.OpenTime, &h.CloseTime, &h.SlotMinutes); err != nil {
			return nil, fmt.Errorf("%w: GetBusinessHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetBusinessHoursByWeekday получает часы работы на конкретный день недели
func (r *Repository) GetBusinessHoursByWeekday(ctx context.Context, weekday domain.Weekday) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "open_time", "close_time", "slot_minutes").
		From("business_hours").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHoursByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.BusinessHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.Weekday, &h.OpenTime, &h.CloseTime, &h.SlotMinutes)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHoursByWeekday - scan business hours: %v", ErrScanRow, err)
	}

	return &h, nil
}

// ReplaceBusinessHours заменяет все часы работы целиком (delete + insert)
// Инвариант "не более одной строки на день недели" проверяется на границе записи
func (r *Repository) ReplaceBusinessHours(ctx context.Context, hours []*domain.BusinessHours) error {
	if err := validateUniqueWeekdays(hours); err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("weekday", "open_time", "close_time", "slot_minutes")

	for _, h := range hours {
		insertBuilder = insertBuilder.Values(int(h.Weekday), h.OpenTime, h.CloseTime, h.SlotMinutes)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceBusinessHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetHolidays получает все праздничные дни
func (r *Repository) GetHolidays(ctx context.Context) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "reason").
		From("holidays").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Reason); err != nil {
			return nil, fmt.Errorf("%w: GetHolidays - scan row: %v", ErrScanRow, err)
		}
		holidays = append(holidays, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// IsHoliday проверяет, является ли дата праздничным днём
func (r *Repository) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("holidays").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsHoliday - build select query: %v", ErrBuildQuery, err)
	}

	var exists int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&exists)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsHoliday - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}

// ReplaceHolidays заменяет все праздничные дни целиком (delete + insert)
func (r *Repository) ReplaceHolidays(ctx context.Context, holidays []*domain.Holiday) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("holidays").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceHolidays - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceHolidays - execute delete: %v", ErrExecQuery, err)
	}

	if len(holidays) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("holidays").
		Columns("date", "reason")

	for _, h := range holidays {
		insertBuilder = insertBuilder.Values(h.Date, h.Reason)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceHolidays - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceHolidays - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// validateUniqueWeekdays проверяет, что каждый день недели встречается не более одного раза
func validateUniqueWeekdays(hours []*domain.BusinessHours) error {
	seen := make(map[domain.Weekday]bool, len(hours))
	for _, h := range hours {
		if seen[h.Weekday] {
			return fmt.Errorf("%w: weekday %d", ErrDuplicateWeekday, h.Weekday)
		}
		seen[h.Weekday] = true
	}
	return nil
}

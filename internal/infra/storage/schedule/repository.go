package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/suphotsudsee/queue-booking-app-v2/internal/domain"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/dbmetrics"
	"github.com/suphotsudsee/queue-booking-app-v2/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"staff_id",
	"weekday",
	"open_time",
	"close_time",
	"is_working",
	"created_at",
}

// Repository репозиторий для работы с недельными расписаниями сотрудников
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaff получает все строки расписания сотрудника
func (r *Repository) GetByStaff(ctx context.Context, staffID int64) ([]*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedules").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSchedules(rows)
}

// GetByStaffAndWeekday получает расписание сотрудника на конкретный день недели
func (r *Repository) GetByStaffAndWeekday(ctx context.Context, staffID int64, weekday domain.Weekday) (*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("staff_schedules").
		Where(squirrel.Eq{"staff_id": staffID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.StaffSchedule
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.StaffID,
		&s.Weekday,
		&s.OpenTime,
		&s.CloseTime,
		&s.IsWorking,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffAndWeekday - scan schedule: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}

// ReplaceForStaff заменяет недельное расписание сотрудника целиком (delete + insert)
// Инвариант "не более одной строки на день недели" проверяется здесь,
// на границе записи, а не в читающем коде
func (r *Repository) ReplaceForStaff(ctx context.Context, staffID int64, entries []*domain.StaffSchedule) error {
	if err := validateUniqueWeekdays(entries); err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("staff_schedules").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForStaff - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForStaff - execute delete: %v", ErrExecQuery, err)
	}

	if len(entries) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("staff_schedules").
		Columns("staff_id", "weekday", "open_time", "close_time", "is_working")

	for _, entry := range entries {
		insertBuilder = insertBuilder.Values(staffID, int(entry.Weekday), entry.OpenTime, entry.CloseTime, entry.IsWorking)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForStaff - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForStaff - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// validateUniqueWeekdays проверяет, что каждый день недели встречается не более одного раза
func validateUniqueWeekdays(entries []*domain.StaffSchedule) error {
	seen := make(map[domain.Weekday]bool, len(entries))
	for _, entry := range entries {
		if seen[entry.Weekday] {
			return fmt.Errorf("%w: weekday %d", ErrDuplicateWeekday, entry.Weekday)
		}
		seen[entry.Weekday] = true
	}
	return nil
}

// scanSchedules сканирует результаты запроса в слайс расписаний
func (r *Repository) scanSchedules(rows *sql.Rows) ([]*domain.StaffSchedule, error) {
	schedules := make([]*domain.StaffSchedule, 0)

	for rows.Next() {
		var s domain.StaffSchedule
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.StaffID,
			&s.Weekday,
			&s.OpenTime,
			&s.CloseTime,
			&s.IsWorking,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time

		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

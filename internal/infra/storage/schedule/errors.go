package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание сотрудника на день не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrDuplicateWeekday возвращается, когда набор расписаний содержит
	// более одной строки на день недели для одного сотрудника
	ErrDuplicateWeekday = errors.New("schedule.repository: duplicate weekday in schedule set")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)

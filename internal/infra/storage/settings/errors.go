package settings

import "errors"

var (
	// ErrBusinessHoursNotFound возвращается, когда часы работы на день недели не настроены
	ErrBusinessHoursNotFound = errors.New("settings.repository: business hours not found")

	// ErrDuplicateWeekday возвращается, когда набор часов работы содержит
	// более одной строки на день недели
	ErrDuplicateWeekday = errors.New("settings.repository: duplicate weekday in business hours set")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)

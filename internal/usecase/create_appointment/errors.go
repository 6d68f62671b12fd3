package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных или неразбираемых входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidService возвращается, когда услуга не найдена или неактивна
	ErrInvalidService = errors.New("create_appointment: service not found or inactive")

	// ErrShopClosed возвращается, когда на день недели не настроены часы работы
	ErrShopClosed = errors.New("create_appointment: shop is closed on this weekday")

	// ErrOutsideBusinessHours возвращается, когда интервал записи выходит за часы работы
	ErrOutsideBusinessHours = errors.New("create_appointment: requested time is outside business hours")

	// ErrHoliday возвращается при попытке записи на выходной день
	ErrHoliday = errors.New("create_appointment: requested date is a holiday")

	// ErrSlotConflict возвращается, когда интервал пересекается с существующей записью
	ErrSlotConflict = errors.New("create_appointment: slot conflicts with an existing appointment")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

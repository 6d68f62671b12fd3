package get_available_slots

import "errors"

var (
	// ErrInvalidService возвращается, когда услуга не найдена или неактивна
	ErrInvalidService = errors.New("get_available_slots: service not found or inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

package linenotify

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("linenotify client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от LINE Notify
	ErrInvalidResponse = errors.New("linenotify client: invalid response")
)

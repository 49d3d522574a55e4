package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrDateInPast возвращается, когда заезд раньше сегодняшнего дня
	ErrDateInPast = errors.New("get_availability: check-in date is in the past")

	// ErrRoomNotFound возвращается, когда комнаты нет в каталоге (strict режим)
	ErrRoomNotFound = errors.New("get_availability: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)

package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateInPast возвращается, когда заезд раньше сегодняшнего дня
	ErrDateInPast = errors.New("create_booking: check-in date is in the past")

	// ErrStayTooLong возвращается, когда проживание длиннее MaxStayNights
	ErrStayTooLong = errors.New("create_booking: stay is too long")

	// ErrRoomNotFound возвращается, когда комнаты нет в каталоге (strict режим)
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrLocationMismatch возвращается, когда комната принадлежит другой точке
	ErrLocationMismatch = errors.New("create_booking: room belongs to another location")

	// ErrTooManyGuests возвращается, когда гостей больше, чем помещается в одну комнату
	ErrTooManyGuests = errors.New("create_booking: too many guests for one unit")

	// ErrOverbooking возвращается, когда на выбранные даты нет мест
	ErrOverbooking = errors.New("create_booking: dates are not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

package extend_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("extend_booking: booking not found")

	// ErrCannotExtend возвращается для броней в финальном статусе
	ErrCannotExtend = errors.New("extend_booking: booking cannot be extended")

	// ErrInvalidCheckOut возвращается, когда новая дата выезда не позже текущей
	ErrInvalidCheckOut = errors.New("extend_booking: new check-out must be after the current one")

	// ErrStayTooLong возвращается, когда продлённое проживание длиннее MaxStayNights
	ErrStayTooLong = errors.New("extend_booking: stay is too long")

	// ErrOverbooking возвращается, когда на новые даты нет мест
	ErrOverbooking = errors.New("extend_booking: dates are not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_booking: internal error")
)

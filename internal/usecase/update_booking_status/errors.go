package update_booking_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrInvalidTransition возвращается, когда переход статуса запрещён жизненным циклом
	ErrInvalidTransition = errors.New("update_booking_status: invalid status transition")

	// ErrPaymentNotSettled возвращается при заезде без подтверждённой оплаты
	ErrPaymentNotSettled = errors.New("update_booking_status: payment is not settled")

	// ErrIdentityNotVerified возвращается при заезде без проверки документов
	ErrIdentityNotVerified = errors.New("update_booking_status: guest identity is not verified")

	// ErrCheckInNotReached возвращается, когда дата заезда ещё не наступила
	ErrCheckInNotReached = errors.New("update_booking_status: check-in date not reached")

	// ErrOverbooking возвращается, когда подтверждение невозможно из-за отсутствия мест
	ErrOverbooking = errors.New("update_booking_status: dates are not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)

package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrOverlapConflict возвращается, когда EXCLUDE ограничение отклонило запись:
	// та же кровать/комната уже занята на пересекающиеся даты
	ErrOverlapConflict = errors.New("booking.repository: overlapping booking for the same unit")

	// ErrDuplicateBooking возвращается при повторной вставке того же id
	ErrDuplicateBooking = errors.New("booking.repository: duplicate booking id")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("booking.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

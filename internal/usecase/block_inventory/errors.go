package block_inventory

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_inventory: invalid input data")

	// ErrDateInPast возвращается, когда блокировка начинается в прошлом
	ErrDateInPast = errors.New("block_inventory: start date is in the past")

	// ErrRoomNotFound возвращается, когда комнаты нет в каталоге (strict режим)
	ErrRoomNotFound = errors.New("block_inventory: room not found")

	// ErrLocationMismatch возвращается, когда комната принадлежит другой точке
	ErrLocationMismatch = errors.New("block_inventory: room belongs to another location")

	// ErrOverbooking возвращается, когда блокируемые места уже заняты
	ErrOverbooking = errors.New("block_inventory: inventory is already occupied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_inventory: internal error")
)

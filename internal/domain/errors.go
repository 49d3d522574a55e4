package domain

import "errors"

var (
	// ErrInvalidLocation неизвестная точка
	ErrInvalidLocation = errors.New("domain: invalid location")

	// ErrInvalidRoomConfig нарушены инварианты конфигурации комнаты
	ErrInvalidRoomConfig = errors.New("domain: invalid room config")

	// ErrInvalidDateRange пустой или перевёрнутый диапазон дат
	ErrInvalidDateRange = errors.New("domain: invalid date range")
)

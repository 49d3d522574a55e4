package capacity

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из Redis
	ErrCacheRead = errors.New("capacity.cache: failed to read")

	// ErrCacheWrite возвращается при ошибке записи в Redis
	ErrCacheWrite = errors.New("capacity.cache: failed to write")

	// ErrInvalidate возвращается, когда не удалось сбросить ключи комнаты
	ErrInvalidate = errors.New("capacity.cache: failed to invalidate")
)

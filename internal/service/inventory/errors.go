package inventory

import "errors"

var (
	// ErrInternal возвращается при ошибках загрузки журнала
	ErrInternal = errors.New("inventory: internal error")
)

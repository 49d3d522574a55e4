package availability

import "errors"

var (
	// ErrInvalidQuery некорректный запрос (пустая комната, гостей < 1, перевёрнутый диапазон)
	ErrInvalidQuery = errors.New("availability: invalid query")

	// ErrUnknownRoom комнаты нет в каталоге, а эвристика отключена (strict режим)
	ErrUnknownRoom = errors.New("availability: room not found in catalog")
)

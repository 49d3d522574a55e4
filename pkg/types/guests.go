package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidGuestCount некорректное количество гостей
var ErrInvalidGuestCount = errors.New("invalid guest count")

// MaxGuestCount верхняя граница количества гостей в одном запросе
// Больше кроватей ни в одной комнате нет, а значение уходит в int4 колонку
const MaxGuestCount = 100

// GuestCount количество гостей на границе API
// Клиенты присылают его и числом (2), и строкой ("2"), поэтому парсим оба варианта один раз здесь,
// дальше по коду ходит обычный int
type GuestCount int

// ParseGuestCount парсит строку (query-параметр). Пустая строка = 0 (не указано)
func ParseGuestCount(s string) (GuestCount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuestCount, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidGuestCount, n)
	}
	if n > MaxGuestCount {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrInvalidGuestCount, n, MaxGuestCount)
	}
	return GuestCount(n), nil
}

// UnmarshalJSON принимает число, строку с числом или null
func (g *GuestCount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*g = 0
		return nil
	}

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	parsed, err := ParseGuestCount(raw)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// OrDefault возвращает количество гостей, подставляя 1, если оно не указано
func (g GuestCount) OrDefault() int {
	if g == 0 {
		return 1
	}
	return int(g)
}

package availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Query вопрос к движку: можно ли разместить Guests гостей в RoomID на Range
type Query struct {
	Location         domain.Location
	RoomID           string
	Range            domain.DateRange
	Guests           int
	ExcludeBookingID string // собственная бронь при подтверждении/продлении
	UnitID           string // конкретная кровать/комната, пусто - любая
}

func (q Query) validate() error {
	if strings.TrimSpace(q.RoomID) == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidQuery)
	}
	if q.Guests < 1 {
		return fmt.Errorf("%w: guests must be >= 1, got %d", ErrInvalidQuery, q.Guests)
	}
	if err := q.Range.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return nil
}

// Ledger текущее состояние журнала, которое передаёт вызывающий код
// Движок его только читает
type Ledger struct {
	Bookings []*domain.Booking
	Blocks   []*domain.InventoryBlock
}

// Claim единица занятости после фильтрации: бронь или блокировка
type Claim struct {
	SourceID  string
	UnitID    string
	Guests    int
	WholeRoom bool // занимает всю вместимость комнаты
}

// StaticCatalog каталог на основе map, удобен для тестов и разовых проверок
type StaticCatalog map[string]*domain.RoomConfig

// NewStaticCatalog строит каталог из списка конфигураций
func NewStaticCatalog(rooms ...*domain.RoomConfig) StaticCatalog {
	c := make(StaticCatalog, len(rooms))
	for _, r := range rooms {
		if r != nil {
			c[r.ID] = r
		}
	}
	return c
}

func (c StaticCatalog) Room(id string) (*domain.RoomConfig, bool) {
	r, ok := c[id]
	return r, ok
}

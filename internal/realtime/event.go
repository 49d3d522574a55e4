package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// DefaultChannel канал Redis для событий изменения журнала
const DefaultChannel = "ledger.changed"

// ErrInvalidEvent возвращается для сообщения, которое нельзя разобрать
var ErrInvalidEvent = errors.New("realtime: invalid event")

// Event событие изменения журнала по комнате
type Event struct {
	Location domain.Location `json:"location"`
	RoomID   string          `json:"roomId"`
	Reason   string          `json:"reason"`
	At       time.Time       `json:"at"`
}

func decodeEvent(payload string) (Event, error) {
	var e Event
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if e.RoomID == "" {
		return Event{}, fmt.Errorf("%w: roomId is empty", ErrInvalidEvent)
	}
	return e, nil
}

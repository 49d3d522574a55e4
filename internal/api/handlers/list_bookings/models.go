package list_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-HostelService/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров
// Проверка значений остаётся за сервисом
func ToServiceRequest(q url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Location: q.Get("location"),
		RoomID:   q.Get("roomId"),
		Status:   q.Get("status"),
		From:     q.Get("from"),
		To:       q.Get("to"),
	}

	if raw := q.Get("includeCancelled"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}

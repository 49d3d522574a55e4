package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
	"github.com/m04kA/SMC-HostelService/internal/api/middleware"
)

// Handler любой обработчик из internal/api/handlers
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Handlers обработчики всех маршрутов /api/v1
type Handlers struct {
	ListRooms  Handler
	GetRoom    Handler
	UpdateRoom Handler

	GetAvailability Handler

	CreateBooking       Handler
	GetBooking          Handler
	ListBookings        Handler
	UpdateBookingStatus Handler
	ExtendBooking       Handler

	CreateBlock Handler
	DeleteBlock Handler
	ListBlocks  Handler
}

// NewRouter собирает маршруты. Всё, что меняет журнал или каталог, требует X-Staff-ID
// metrics может быть nil, тогда HTTP метрики не пишутся
func NewRouter(h Handlers, metrics middleware.HTTPMetrics) *mux.Router {
	r := mux.NewRouter()
	if metrics != nil {
		r.Use(middleware.MetricsMiddleware(metrics))
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты (только чтение)
	api.HandleFunc("/rooms", h.ListRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", h.GetRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", h.GetAvailability.Handle).Methods(http.MethodGet)

	// Маршруты персонала
	staff := api.NewRoute().Subrouter()
	staff.Use(middleware.Auth)

	staff.HandleFunc("/rooms/{roomId}", h.UpdateRoom.Handle).Methods(http.MethodPut)

	staff.HandleFunc("/bookings", h.CreateBooking.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/bookings", h.ListBookings.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{bookingId}", h.GetBooking.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{bookingId}/status", h.UpdateBookingStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{bookingId}/extend", h.ExtendBooking.Handle).Methods(http.MethodPatch)

	staff.HandleFunc("/blocks", h.CreateBlock.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/blocks", h.ListBlocks.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/blocks/{blockId}", h.DeleteBlock.Handle).Methods(http.MethodDelete)

	return r
}

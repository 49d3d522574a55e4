package domain

// Эвристическая вместимость для комнат, которых нет в каталоге
const (
	FallbackDormCapacity    = 6
	FallbackRoomCapacity    = 1
	FallbackPrivateMaxGuest = 2
)

// Business validation constants
const (
	MinCapacity                 = 1
	MinMaxGuests                = 1
	MaxCapacity                 = 100
	MaxStayNights               = 90
	MaxGuestNameLength          = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses все статусы бронирований
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusMaintenance,
	StatusCancelled,
	StatusNoShow,
}

// InactiveStatuses статусы, которые не занимают инвентарь
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// NoShowCandidateStatuses статусы, которые переводятся в no_show, если гость не заехал
var NoShowCandidateStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

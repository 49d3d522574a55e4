package domain

// RoomCapacity остаток вместимости комнаты на диапазон дат
type RoomCapacity struct {
	RoomID    string
	Remaining int // свободно кроватей (dorm) или комнат (private/suite)
	Total     int
}

// IsFull returns true if nothing can be sold
func (c *RoomCapacity) IsFull() bool {
	return c.Remaining <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (c *RoomCapacity) OccupancyRate() float64 {
	if c.Total == 0 {
		return 0
	}
	occupied := c.Total - c.Remaining
	return float64(occupied) / float64(c.Total) * 100
}

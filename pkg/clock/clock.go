package clock

import "time"

// Clock отдаёт текущее время в часовом поясе хостела
// Календарная дата ("сегодня") у use cases и планировщика считается по одному и тому же поясу
type Clock struct {
	location *time.Location
}

// New создает часы; nil означает UTC
func New(location *time.Location) *Clock {
	if location == nil {
		location = time.UTC
	}
	return &Clock{location: location}
}

// Load создает часы по имени IANA часового пояса ("Europe/Madrid"), пустая строка = UTC
func Load(timezone string) (*Clock, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return New(location), nil
}

// Now текущее время в часовом поясе хостела
func (c *Clock) Now() time.Time {
	return time.Now().In(c.location)
}

// Location часовой пояс часов
func (c *Clock) Location() *time.Location {
	return c.location
}

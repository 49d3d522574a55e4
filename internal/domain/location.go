package domain

import "fmt"

// Location физическая точка хостела
type Location string

const (
	LocationPueblo  Location = "pueblo"
	LocationHideout Location = "hideout"
)

// Locations закрытый список точек
var Locations = []Location{LocationPueblo, LocationHideout}

// IsValid returns true if the location belongs to the closed set
func (l Location) IsValid() bool {
	for _, known := range Locations {
		if l == known {
			return true
		}
	}
	return false
}

// ParseLocation конвертирует строку в Location с валидацией
func ParseLocation(s string) (Location, error) {
	l := Location(s)
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	return l, nil
}

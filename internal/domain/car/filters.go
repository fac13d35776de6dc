// internal/domain/car/filters.go
package car

import "strings"

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FilterConfig is the active filter criteria for the catalog view.
// All criteria are ANDed; an empty list or empty search string places
// no restriction on that attribute.
type FilterConfig struct {
	PriceRange   PriceRange     `json:"price_range"`
	Fuel         []FuelType     `json:"fuel"`
	Transmission []Transmission `json:"transmission"`
	Status       []Status       `json:"status"`
	Search       string         `json:"search"`
}

// Matches reports whether c satisfies every criterion in f.
func (f FilterConfig) Matches(c Car) bool {
	if c.Price < f.PriceRange.Min || c.Price > f.PriceRange.Max {
		return false
	}
	if len(f.Fuel) > 0 && !containsFuel(f.Fuel, c.Fuel) {
		return false
	}
	if len(f.Transmission) > 0 && !containsTransmission(f.Transmission, c.Transmission) {
		return false
	}
	if len(f.Status) > 0 && !containsStatus(f.Status, c.Status) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func containsFuel(list []FuelType, v FuelType) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsTransmission(list []Transmission, v Transmission) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsStatus(list []Status, v Status) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// internal/domain/car/entity.go
package car

import "time"

// Transmission is the gearbox kind of a listing.
type Transmission string

const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automatic"
)

// FuelType is the fuel kind of a listing.
type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
	FuelCNG      FuelType = "CNG"
)

// Status is the availability of a listing.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusSoldOut   Status = "Sold Out"
)

// Toggle flips Available <-> Sold Out.
func (s Status) Toggle() Status {
	if s == StatusAvailable {
		return StatusSoldOut
	}
	return StatusAvailable
}

// Car is one vehicle listing in the catalog.
type Car struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Year         int          `json:"year"`
	Price        int64        `json:"price"`
	Kilometers   int64        `json:"kilometers"`
	Transmission Transmission `json:"transmission"`
	Fuel         FuelType     `json:"fuel"`
	Description  string       `json:"description"`
	Status       Status       `json:"status"`
	Images       []string     `json:"images"`
	CreatedAt    time.Time    `json:"created_at"`
	Features     []string     `json:"features,omitempty"`
}

// internal/service/catalog/validate.go
package catalog

import (
	"fmt"
	"strings"
	"time"

	"jeyamcars-service/internal/domain/car"
	xerrors "jeyamcars-service/internal/pkg/errors"
)

// validateCreate enforces the admin submission rules at the store
// boundary: required title, year within [1990, current year], positive
// price, non-negative kilometers, required description, at least one
// image.
func validateCreate(req car.CreateCarRequest) error {
	ve := xerrors.NewValidationError()

	if strings.TrimSpace(req.Title) == "" {
		ve.Add("title", "title is required")
	}
	checkYear(ve, req.Year)
	if req.Price <= 0 {
		ve.Add("price", "price must be greater than zero")
	}
	if req.Kilometers < 0 {
		ve.Add("kilometers", "kilometers cannot be negative")
	}
	if strings.TrimSpace(req.Description) == "" {
		ve.Add("description", "description is required")
	}
	if len(req.Images) == 0 {
		ve.Add("images", "at least one image is required")
	}
	checkTransmission(ve, req.Transmission)
	checkFuel(ve, req.Fuel)
	if req.Status != "" {
		checkStatus(ve, req.Status)
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// validateUpdate applies the same rules to whichever fields the patch
// carries.
func validateUpdate(patch car.UpdateCarRequest) error {
	ve := xerrors.NewValidationError()

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		ve.Add("title", "title is required")
	}
	if patch.Year != nil {
		checkYear(ve, *patch.Year)
	}
	if patch.Price != nil && *patch.Price <= 0 {
		ve.Add("price", "price must be greater than zero")
	}
	if patch.Kilometers != nil && *patch.Kilometers < 0 {
		ve.Add("kilometers", "kilometers cannot be negative")
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		ve.Add("description", "description is required")
	}
	if patch.Images != nil && len(patch.Images) == 0 {
		ve.Add("images", "at least one image is required")
	}
	if patch.Transmission != nil {
		checkTransmission(ve, *patch.Transmission)
	}
	if patch.Fuel != nil {
		checkFuel(ve, *patch.Fuel)
	}
	if patch.Status != nil {
		checkStatus(ve, *patch.Status)
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

func checkYear(ve *xerrors.ValidationError, year int) {
	current := time.Now().Year()
	if year < minYear || year > current {
		ve.Add("year", fmt.Sprintf("year must be between %d and %d", minYear, current))
	}
}

func checkTransmission(ve *xerrors.ValidationError, t car.Transmission) {
	switch t {
	case car.TransmissionManual, car.TransmissionAutomatic:
	default:
		ve.Add("transmission", "transmission must be Manual or Automatic")
	}
}

func checkFuel(ve *xerrors.ValidationError, f car.FuelType) {
	switch f {
	case car.FuelPetrol, car.FuelDiesel, car.FuelElectric, car.FuelHybrid, car.FuelCNG:
	default:
		ve.Add("fuel", "fuel must be one of Petrol, Diesel, Electric, Hybrid, CNG")
	}
}

func checkStatus(ve *xerrors.ValidationError, s car.Status) {
	switch s {
	case car.StatusAvailable, car.StatusSoldOut:
	default:
		ve.Add("status", "status must be Available or Sold Out")
	}
}

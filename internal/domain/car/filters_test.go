package car

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusToggle(t *testing.T) {
	assert.Equal(t, StatusSoldOut, StatusAvailable.Toggle())
	assert.Equal(t, StatusAvailable, StatusSoldOut.Toggle())
	assert.Equal(t, StatusAvailable, StatusAvailable.Toggle().Toggle())
}

func TestFilterConfigMatches(t *testing.T) {
	entry := Car{
		Title:        "Honda City SV 2019",
		Price:        850000,
		Transmission: TransmissionAutomatic,
		Fuel:         FuelPetrol,
		Status:       StatusAvailable,
	}

	base := FilterConfig{PriceRange: PriceRange{Min: 0, Max: 2000000}}

	tests := []struct {
		name   string
		mutate func(*FilterConfig)
		want   bool
	}{
		{"no restrictions", func(f *FilterConfig) {}, true},
		{"price below min", func(f *FilterConfig) { f.PriceRange.Min = 900000 }, false},
		{"price above max", func(f *FilterConfig) { f.PriceRange.Max = 800000 }, false},
		{"price bounds inclusive", func(f *FilterConfig) { f.PriceRange = PriceRange{Min: 850000, Max: 850000} }, true},
		{"fuel member", func(f *FilterConfig) { f.Fuel = []FuelType{FuelDiesel, FuelPetrol} }, true},
		{"fuel non-member", func(f *FilterConfig) { f.Fuel = []FuelType{FuelDiesel} }, false},
		{"transmission member", func(f *FilterConfig) { f.Transmission = []Transmission{TransmissionAutomatic} }, true},
		{"transmission non-member", func(f *FilterConfig) { f.Transmission = []Transmission{TransmissionManual} }, false},
		{"status member", func(f *FilterConfig) { f.Status = []Status{StatusAvailable} }, true},
		{"status non-member", func(f *FilterConfig) { f.Status = []Status{StatusSoldOut} }, false},
		{"search case-insensitive", func(f *FilterConfig) { f.Search = "hOnDa" }, true},
		{"search no match", func(f *FilterConfig) { f.Search = "maruti" }, false},
		{"all criteria AND together", func(f *FilterConfig) {
			f.Fuel = []FuelType{FuelPetrol}
			f.Status = []Status{StatusSoldOut}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base
			tt.mutate(&f)
			assert.Equal(t, tt.want, f.Matches(entry))
		})
	}
}

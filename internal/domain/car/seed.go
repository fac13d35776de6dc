// internal/domain/car/seed.go
package car

import "time"

// Seed returns the fixture inventory loaded on every start. The
// catalog is not persisted, so mutations do not survive a restart.
// Fixture entries are trusted and bypass the create-time validation
// applied to admin submissions.
func Seed() []Car {
	return []Car{
		{
			ID:           "1",
			Title:        "Maruti Swift VXI 2018",
			Year:         2018,
			Price:        550000,
			Kilometers:   45000,
			Transmission: TransmissionManual,
			Fuel:         FuelPetrol,
			Description:  "Well maintained Maruti Swift with single owner. All service records available. Power windows, power steering, AC in excellent condition.",
			Status:       StatusAvailable,
			Images:       []string{"/placeholder.svg", "/placeholder.svg", "/placeholder.svg"},
			CreatedAt:    time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			Features:     []string{"Power Windows", "Power Steering", "Air Conditioning", "Airbags"},
		},
		{
			ID:           "2",
			Title:        "Honda City SV 2019",
			Year:         2019,
			Price:        850000,
			Kilometers:   32000,
			Transmission: TransmissionAutomatic,
			Fuel:         FuelPetrol,
			Description:  "Premium condition Honda City with automatic transmission. Includes enhanced audio system, reverse camera, and all original accessories.",
			Status:       StatusAvailable,
			Images:       []string{"/placeholder.svg", "/placeholder.svg"},
			CreatedAt:    time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC),
			Features:     []string{"Reverse Camera", "Premium Audio", "Alloy Wheels", "Cruise Control"},
		},
		{
			ID:           "3",
			Title:        "Hyundai Creta SX 2020",
			Year:         2020,
			Price:        1250000,
			Kilometers:   28000,
			Transmission: TransmissionAutomatic,
			Fuel:         FuelDiesel,
			Description:  "Top model Creta with panoramic sunroof, leather seats, and navigation system. Excellent fuel efficiency and performance.",
			Status:       StatusSoldOut,
			Images:       []string{"/placeholder.svg", "/placeholder.svg", "/placeholder.svg", "/placeholder.svg"},
			CreatedAt:    time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC),
			Features:     []string{"Panoramic Sunroof", "Leather Seats", "Navigation", "Push Button Start"},
		},
		{
			ID:           "4",
			Title:        "Tata Nexon XZ 2021",
			Year:         2021,
			Price:        950000,
			Kilometers:   18000,
			Transmission: TransmissionManual,
			Fuel:         FuelPetrol,
			Description:  "Safe and reliable Tata Nexon with 5-star safety rating. Features include touchscreen infotainment, sunroof, and automatic climate control.",
			Status:       StatusAvailable,
			Images:       []string{"/placeholder.svg", "/placeholder.svg"},
			CreatedAt:    time.Date(2023, time.April, 20, 0, 0, 0, 0, time.UTC),
			Features:     []string{"5-Star Safety", "Touchscreen Infotainment", "Sunroof", "Climate Control"},
		},
		{
			ID:           "5",
			Title:        "Toyota Innova Crysta 2017",
			Year:         2017,
			Price:        1450000,
			Kilometers:   65000,
			Transmission: TransmissionManual,
			Fuel:         FuelDiesel,
			Description:  "Spacious 7-seater family vehicle with excellent maintenance history. Perfect for large families or tour operators.",
			Status:       StatusAvailable,
			Images:       []string{"/placeholder.svg"},
			CreatedAt:    time.Date(2023, time.January, 30, 0, 0, 0, 0, time.UTC),
			Features:     []string{"7-Seater", "Captain Seats", "Roof AC", "Spacious Boot"},
		},
		{
			ID:           "6",
			Title:        "Mahindra XUV500 W10 2018",
			Year:         2018,
			Price:        1050000,
			Kilometers:   57000,
			Transmission: TransmissionManual,
			Fuel:         FuelDiesel,
			Description:  "Powerful SUV with 7 seating capacity. Features include leather seats, touchscreen navigation, and reverse camera.",
			Status:       StatusSoldOut,
			Images:       []string{"/placeholder.svg", "/placeholder.svg"},
			CreatedAt:    time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
			Features:     []string{"7-Seater", "Leather Interior", "Navigation", "Reverse Camera"},
		},
	}
}

// internal/domain/car/dto.go
package car

// CreateCarRequest carries the fields of a new listing. The catalog
// service assigns the identifier and creation timestamp.
type CreateCarRequest struct {
	Title        string       `json:"title"`
	Year         int          `json:"year"`
	Price        int64        `json:"price"`
	Kilometers   int64        `json:"kilometers"`
	Transmission Transmission `json:"transmission"`
	Fuel         FuelType     `json:"fuel"`
	Description  string       `json:"description"`
	Status       Status       `json:"status"`
	Images       []string     `json:"images"`
	Features     []string     `json:"features"`
}

// UpdateCarRequest is a partial patch of an existing listing. Nil
// fields are left unchanged; list fields are replaced wholesale.
type UpdateCarRequest struct {
	Title        *string       `json:"title,omitempty"`
	Year         *int          `json:"year,omitempty"`
	Price        *int64        `json:"price,omitempty"`
	Kilometers   *int64        `json:"kilometers,omitempty"`
	Transmission *Transmission `json:"transmission,omitempty"`
	Fuel         *FuelType     `json:"fuel,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Status       *Status       `json:"status,omitempty"`
	Images       []string      `json:"images,omitempty"`
	Features     []string      `json:"features,omitempty"`
}

// PriceRangePatch patches one or both bounds of the price range.
type PriceRangePatch struct {
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`
}

// FilterPatch is a partial update of the FilterConfig. The price range
// is deep-merged bound by bound; list fields and the search term are
// replaced when present (an empty list clears that restriction).
type FilterPatch struct {
	PriceRange   *PriceRangePatch `json:"price_range,omitempty"`
	Fuel         *[]FuelType      `json:"fuel,omitempty"`
	Transmission *[]Transmission  `json:"transmission,omitempty"`
	Status       *[]Status        `json:"status,omitempty"`
	Search       *string          `json:"search,omitempty"`
}

// CarListResponse is the payload for list endpoints.
type CarListResponse struct {
	Cars  []Car `json:"cars"`
	Total int   `json:"total"`
}

// FilterStateResponse is the payload for the filter state endpoint.
type FilterStateResponse struct {
	Filters FilterConfig `json:"filters"`
	Bounds  PriceRange   `json:"bounds"`
}

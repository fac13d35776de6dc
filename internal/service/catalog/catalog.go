// internal/service/catalog/catalog.go
package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"jeyamcars-service/internal/domain/car"
	xerrors "jeyamcars-service/internal/pkg/errors"
	"jeyamcars-service/internal/ws"
)

// featuredCount is how many listings the landing page shows.
const featuredCount = 3

// minYear is the oldest manufacture year an admin submission may carry.
const minYear = 1990

// CatalogService owns the car collection, the active filter config and
// the derived filtered view. It is the single source of truth for
// catalog CRUD and filtering. All state lives in memory; the catalog is
// re-seeded on every start.
type CatalogService struct {
	mu       sync.RWMutex
	cars     []car.Car
	filtered []car.Car
	filters  car.FilterConfig
	initial  car.FilterConfig
	selected *car.Car

	notifier ws.Notifier
	logger   *zap.Logger
}

// NewCatalogService builds the store around a seed collection. The
// initial filter config takes its price bounds from the seed; seed
// entries are trusted and not validated.
func NewCatalogService(seed []car.Car, notifier ws.Notifier, logger *zap.Logger) *CatalogService {
	cars := make([]car.Car, len(seed))
	copy(cars, seed)

	initial := car.FilterConfig{
		PriceRange: observedPriceBounds(cars),
	}

	s := &CatalogService{
		cars:     cars,
		filters:  initial,
		initial:  initial,
		notifier: notifier,
		logger:   logger,
	}
	s.recompute()
	return s
}

func observedPriceBounds(cars []car.Car) car.PriceRange {
	if len(cars) == 0 {
		return car.PriceRange{}
	}
	bounds := car.PriceRange{Min: cars[0].Price, Max: cars[0].Price}
	for _, c := range cars[1:] {
		if c.Price < bounds.Min {
			bounds.Min = c.Price
		}
		if c.Price > bounds.Max {
			bounds.Max = c.Price
		}
	}
	return bounds
}

// recompute rebuilds the filtered view. Callers must hold s.mu.
// Selection is stable: input order is preserved.
func (s *CatalogService) recompute() {
	filtered := make([]car.Car, 0, len(s.cars))
	for _, c := range s.cars {
		if s.filters.Matches(c) {
			filtered = append(filtered, c)
		}
	}
	s.filtered = filtered
}

// ---------- Filtering ----------

// SetFilters merges the patch into the current filter config and
// recomputes the filtered view. Price bounds merge independently; list
// fields and the search term are replaced when present. Bounds are not
// validated: min > max simply matches nothing.
func (s *CatalogService) SetFilters(patch car.FilterPatch) car.FilterConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.PriceRange != nil {
		if patch.PriceRange.Min != nil {
			s.filters.PriceRange.Min = *patch.PriceRange.Min
		}
		if patch.PriceRange.Max != nil {
			s.filters.PriceRange.Max = *patch.PriceRange.Max
		}
	}
	if patch.Fuel != nil {
		s.filters.Fuel = append([]car.FuelType(nil), (*patch.Fuel)...)
	}
	if patch.Transmission != nil {
		s.filters.Transmission = append([]car.Transmission(nil), (*patch.Transmission)...)
	}
	if patch.Status != nil {
		s.filters.Status = append([]car.Status(nil), (*patch.Status)...)
	}
	if patch.Search != nil {
		s.filters.Search = *patch.Search
	}

	s.recompute()
	return s.filters
}

// ResetFilters restores the initial full-collection price bounds and
// empty constraints, then recomputes the filtered view.
func (s *CatalogService) ResetFilters() car.FilterConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = s.initial
	s.recompute()
	return s.filters
}

// Filters returns the active filter config.
func (s *CatalogService) Filters() car.FilterConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// PriceBounds returns the full-collection bounds observed at seed time.
func (s *CatalogService) PriceBounds() car.PriceRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initial.PriceRange
}

// ---------- Reads ----------

// Cars returns a snapshot of the full collection.
func (s *CatalogService) Cars() []car.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]car.Car(nil), s.cars...)
}

// FilteredCars returns a snapshot of the derived filtered view.
func (s *CatalogService) FilteredCars() []car.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]car.Car(nil), s.filtered...)
}

// FeaturedCars returns the first listings in seed order for the
// landing page.
func (s *CatalogService) FeaturedCars() []car.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := featuredCount
	if len(s.cars) < n {
		n = len(s.cars)
	}
	return append([]car.Car(nil), s.cars[:n]...)
}

// GetCar returns the listing with the given id.
func (s *CatalogService) GetCar(id string) (*car.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return nil, xerrors.ErrNotFound
	}
	c := s.cars[i]
	return &c, nil
}

// SelectedCar returns the currently selected listing, or nil.
func (s *CatalogService) SelectedCar() *car.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	c := *s.selected
	return &c
}

// ---------- Mutations ----------

// AddCar validates the submission, assigns an identifier and creation
// timestamp, appends the listing and recomputes the filtered view.
func (s *CatalogService) AddCar(req car.CreateCarRequest) (*car.Car, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = car.StatusAvailable
	}

	newCar := car.Car{
		ID:           ulid.Make().String(),
		Title:        req.Title,
		Year:         req.Year,
		Price:        req.Price,
		Kilometers:   req.Kilometers,
		Transmission: req.Transmission,
		Fuel:         req.Fuel,
		Description:  req.Description,
		Status:       status,
		Images:       append([]string(nil), req.Images...),
		CreatedAt:    time.Now().UTC(),
		Features:     append([]string(nil), req.Features...),
	}

	s.mu.Lock()
	s.cars = append(s.cars, newCar)
	s.recompute()
	s.mu.Unlock()

	s.logger.Info("car added",
		zap.String("car_id", newCar.ID),
		zap.String("title", newCar.Title),
	)
	s.notifier.Success("Car added successfully")

	return &newCar, nil
}

// UpdateCar merges the patch into the matching listing and recomputes
// the filtered view. Returns ErrNotFound when the id is absent, and a
// ValidationError when a patched field violates the submission rules.
// The selected listing is refreshed if it matches.
func (s *CatalogService) UpdateCar(id string, patch car.UpdateCarRequest) (*car.Car, error) {
	if err := validateUpdate(patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("update car %s: %w", id, xerrors.ErrNotFound)
	}

	applyPatch(&s.cars[i], patch)
	updated := s.cars[i]
	if s.selected != nil && s.selected.ID == id {
		s.selected = &updated
	}
	s.recompute()
	s.mu.Unlock()

	s.logger.Info("car updated", zap.String("car_id", id))
	s.notifier.Success("Car updated successfully")

	return &updated, nil
}

// DeleteCar removes the listing from the collection and the filtered
// view, and clears the selection if it matched.
func (s *CatalogService) DeleteCar(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete car %s: %w", id, xerrors.ErrNotFound)
	}

	s.cars = append(s.cars[:i], s.cars[i+1:]...)
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	s.recompute()
	s.mu.Unlock()

	s.logger.Info("car deleted", zap.String("car_id", id))
	s.notifier.Success("Car deleted successfully")

	return nil
}

// ToggleStatus flips Available <-> Sold Out on the matching listing.
func (s *CatalogService) ToggleStatus(id string) (*car.Car, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("toggle status of car %s: %w", id, xerrors.ErrNotFound)
	}

	s.cars[i].Status = s.cars[i].Status.Toggle()
	updated := s.cars[i]
	if s.selected != nil && s.selected.ID == id {
		s.selected = &updated
	}
	s.recompute()
	s.mu.Unlock()

	s.logger.Info("car status toggled",
		zap.String("car_id", id),
		zap.String("status", string(updated.Status)),
	)
	s.notifier.Success("Car status updated")

	return &updated, nil
}

// SelectCar marks the matching listing as the one under edit.
func (s *CatalogService) SelectCar(id string) (*car.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("select car %s: %w", id, xerrors.ErrNotFound)
	}
	c := s.cars[i]
	s.selected = &c
	return &c, nil
}

// ClearSelection drops the current selection.
func (s *CatalogService) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// indexOf returns the position of id in the collection, or -1.
// Callers must hold s.mu.
func (s *CatalogService) indexOf(id string) int {
	for i := range s.cars {
		if s.cars[i].ID == id {
			return i
		}
	}
	return -1
}

func applyPatch(c *car.Car, patch car.UpdateCarRequest) {
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Year != nil {
		c.Year = *patch.Year
	}
	if patch.Price != nil {
		c.Price = *patch.Price
	}
	if patch.Kilometers != nil {
		c.Kilometers = *patch.Kilometers
	}
	if patch.Transmission != nil {
		c.Transmission = *patch.Transmission
	}
	if patch.Fuel != nil {
		c.Fuel = *patch.Fuel
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Images != nil {
		c.Images = append([]string(nil), patch.Images...)
	}
	if patch.Features != nil {
		c.Features = append([]string(nil), patch.Features...)
	}
}

package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jeyamcars-service/internal/domain/car"
	xerrors "jeyamcars-service/internal/pkg/errors"
	"jeyamcars-service/internal/ws"
)

func newTestService() *CatalogService {
	return NewCatalogService(car.Seed(), ws.Nop{}, zap.NewNop())
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func fuelList(f ...car.FuelType) *[]car.FuelType { return &f }
func statusList(s ...car.Status) *[]car.Status   { return &s }

func transmissionList(t ...car.Transmission) *[]car.Transmission { return &t }

func validCreateRequest() car.CreateCarRequest {
	return car.CreateCarRequest{
		Title:        "Kia Seltos HTX 2022",
		Year:         2022,
		Price:        1350000,
		Kilometers:   12000,
		Transmission: car.TransmissionAutomatic,
		Fuel:         car.FuelPetrol,
		Description:  "Single owner Seltos in showroom condition.",
		Images:       []string{"/placeholder.svg"},
		Features:     []string{"Ventilated Seats"},
	}
}

func titles(cars []car.Car) []string {
	out := make([]string, len(cars))
	for i, c := range cars {
		out[i] = c.Title
	}
	return out
}

func prices(cars []car.Car) []int64 {
	out := make([]int64, len(cars))
	for i, c := range cars {
		out[i] = c.Price
	}
	return out
}

func TestNewCatalogService_InitialState(t *testing.T) {
	s := newTestService()

	assert.Len(t, s.Cars(), 6)
	assert.Len(t, s.FilteredCars(), 6, "initial view is unfiltered")
	assert.Nil(t, s.SelectedCar())

	// Bounds come from the observed seed prices.
	bounds := s.PriceBounds()
	assert.Equal(t, int64(550000), bounds.Min)
	assert.Equal(t, int64(1450000), bounds.Max)

	filters := s.Filters()
	assert.Equal(t, bounds, filters.PriceRange)
	assert.Empty(t, filters.Fuel)
	assert.Empty(t, filters.Transmission)
	assert.Empty(t, filters.Status)
	assert.Empty(t, filters.Search)
}

func TestSetFilters_PriceRangeScenario(t *testing.T) {
	s := newTestService()

	s.SetFilters(car.FilterPatch{
		PriceRange: &car.PriceRangePatch{Min: int64Ptr(500000), Max: int64Ptr(1000000)},
	})

	assert.Equal(t, []int64{550000, 850000, 950000}, prices(s.FilteredCars()),
		"matching entries keep their original relative order")
}

func TestSetFilters_DieselAvailableScenario(t *testing.T) {
	s := newTestService()

	s.SetFilters(car.FilterPatch{
		Fuel:   fuelList(car.FuelDiesel),
		Status: statusList(car.StatusAvailable),
	})

	filtered := s.FilteredCars()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Toyota Innova Crysta 2017", filtered[0].Title,
		"Creta and XUV500 are Diesel but Sold Out")
}

func TestSetFilters_TransmissionAndSearch(t *testing.T) {
	s := newTestService()

	s.SetFilters(car.FilterPatch{Transmission: transmissionList(car.TransmissionAutomatic)})
	assert.Equal(t, []string{"Honda City SV 2019", "Hyundai Creta SX 2020"}, titles(s.FilteredCars()))

	// Search is a case-insensitive substring match on the title and
	// composes with the transmission restriction.
	s.SetFilters(car.FilterPatch{Search: strPtr("hOnDa")})
	assert.Equal(t, []string{"Honda City SV 2019"}, titles(s.FilteredCars()))

	// Clearing the list restriction keeps the search.
	s.SetFilters(car.FilterPatch{Transmission: transmissionList()})
	assert.Equal(t, []string{"Honda City SV 2019"}, titles(s.FilteredCars()))
}

func TestSetFilters_DeepMergesPriceBounds(t *testing.T) {
	s := newTestService()

	s.SetFilters(car.FilterPatch{PriceRange: &car.PriceRangePatch{Min: int64Ptr(900000)}})
	filters := s.Filters()
	assert.Equal(t, int64(900000), filters.PriceRange.Min)
	assert.Equal(t, int64(1450000), filters.PriceRange.Max, "unpatched bound is kept")

	s.SetFilters(car.FilterPatch{PriceRange: &car.PriceRangePatch{Max: int64Ptr(1100000)}})
	filters = s.Filters()
	assert.Equal(t, int64(900000), filters.PriceRange.Min)
	assert.Equal(t, int64(1100000), filters.PriceRange.Max)

	assert.Equal(t, []int64{950000, 1050000}, prices(s.FilteredCars()))
}

func TestSetFilters_InvertedBoundsMatchNothing(t *testing.T) {
	s := newTestService()

	s.SetFilters(car.FilterPatch{
		PriceRange: &car.PriceRangePatch{Min: int64Ptr(2000000), Max: int64Ptr(1000000)},
	})

	assert.Empty(t, s.FilteredCars(), "min > max is not rejected, it simply matches nothing")
}

func TestResetFilters_RestoresInitialConfigAndView(t *testing.T) {
	s := newTestService()
	initial := s.Filters()

	s.SetFilters(car.FilterPatch{
		PriceRange: &car.PriceRangePatch{Min: int64Ptr(900000)},
		Fuel:       fuelList(car.FuelDiesel),
		Search:     strPtr("creta"),
	})
	require.NotEqual(t, initial, s.Filters())

	got := s.ResetFilters()
	assert.Equal(t, initial, got)
	assert.Equal(t, initial, s.Filters())
	assert.Len(t, s.FilteredCars(), 6)
}

func TestAddCar_AssignsIDAndTimestamp(t *testing.T) {
	s := newTestService()

	before := time.Now().UTC()
	created, err := s.AddCar(validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.Before(before))
	assert.Equal(t, car.StatusAvailable, created.Status, "status defaults to Available")

	assert.Len(t, s.Cars(), 7)
	assert.Len(t, s.FilteredCars(), 7, "view is recomputed after add")

	// IDs stay unique across rapid successive adds.
	other, err := s.AddCar(validCreateRequest())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestAddCar_RespectsActiveFilters(t *testing.T) {
	s := newTestService()
	s.SetFilters(car.FilterPatch{Fuel: fuelList(car.FuelDiesel)})
	require.Len(t, s.FilteredCars(), 3)

	_, err := s.AddCar(validCreateRequest()) // Petrol
	require.NoError(t, err)

	assert.Len(t, s.FilteredCars(), 3, "a non-matching entry does not enter the view")
	assert.Len(t, s.Cars(), 7)
}

func TestAddCar_Validation(t *testing.T) {
	s := newTestService()

	tests := []struct {
		name   string
		mutate func(*car.CreateCarRequest)
		field  string
	}{
		{"missing title", func(r *car.CreateCarRequest) { r.Title = "  " }, "title"},
		{"year too old", func(r *car.CreateCarRequest) { r.Year = 1989 }, "year"},
		{"year in future", func(r *car.CreateCarRequest) { r.Year = time.Now().Year() + 1 }, "year"},
		{"zero price", func(r *car.CreateCarRequest) { r.Price = 0 }, "price"},
		{"negative price", func(r *car.CreateCarRequest) { r.Price = -100 }, "price"},
		{"negative kilometers", func(r *car.CreateCarRequest) { r.Kilometers = -1 }, "kilometers"},
		{"missing description", func(r *car.CreateCarRequest) { r.Description = "" }, "description"},
		{"no images", func(r *car.CreateCarRequest) { r.Images = nil }, "images"},
		{"bad transmission", func(r *car.CreateCarRequest) { r.Transmission = "CVT" }, "transmission"},
		{"bad fuel", func(r *car.CreateCarRequest) { r.Fuel = "Steam" }, "fuel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := s.AddCar(req)
			require.Error(t, err)
			ve, ok := xerrors.AsValidation(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Contains(t, ve.Fields, tt.field)
			assert.Len(t, s.Cars(), 6, "rejected submission must not enter the store")
		})
	}
}

func TestAddThenDelete_RestoresCollection(t *testing.T) {
	s := newTestService()
	before := s.Cars()

	created, err := s.AddCar(validCreateRequest())
	require.NoError(t, err)
	require.NoError(t, s.DeleteCar(created.ID))

	assert.Equal(t, before, s.Cars())
	assert.Equal(t, before, s.FilteredCars())
}

func TestUpdateCar(t *testing.T) {
	s := newTestService()

	updated, err := s.UpdateCar("1", car.UpdateCarRequest{
		Price:      int64Ptr(525000),
		Kilometers: int64Ptr(46000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(525000), updated.Price)
	assert.Equal(t, int64(46000), updated.Kilometers)
	assert.Equal(t, "Maruti Swift VXI 2018", updated.Title, "unpatched fields are kept")

	stored, err := s.GetCar("1")
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateCar_EmptyPatchLeavesEntryUnchanged(t *testing.T) {
	s := newTestService()
	before, err := s.GetCar("2")
	require.NoError(t, err)

	after, err := s.UpdateCar("2", car.UpdateCarRequest{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateCar_MissingID(t *testing.T) {
	s := newTestService()

	_, err := s.UpdateCar("no-such-id", car.UpdateCarRequest{Price: int64Ptr(100)})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestUpdateCar_ValidatesPatchedFields(t *testing.T) {
	s := newTestService()

	_, err := s.UpdateCar("1", car.UpdateCarRequest{Year: intPtr(1980), Price: int64Ptr(-5)})
	require.Error(t, err)
	ve, ok := xerrors.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "year")
	assert.Contains(t, ve.Fields, "price")

	// Entry is untouched by the rejected patch.
	stored, err := s.GetCar("1")
	require.NoError(t, err)
	assert.Equal(t, 2018, stored.Year)
}

func TestUpdateCar_RefreshesSelection(t *testing.T) {
	s := newTestService()
	_, err := s.SelectCar("3")
	require.NoError(t, err)

	_, err = s.UpdateCar("3", car.UpdateCarRequest{Title: strPtr("Hyundai Creta SX(O) 2020")})
	require.NoError(t, err)

	selected := s.SelectedCar()
	require.NotNil(t, selected)
	assert.Equal(t, "Hyundai Creta SX(O) 2020", selected.Title)
}

func TestDeleteCar(t *testing.T) {
	s := newTestService()
	require.NoError(t, s.DeleteCar("4"))

	assert.Len(t, s.Cars(), 5)
	_, err := s.GetCar("4")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
	assert.NotContains(t, titles(s.FilteredCars()), "Tata Nexon XZ 2021")

	assert.ErrorIs(t, s.DeleteCar("4"), xerrors.ErrNotFound)
}

func TestDeleteCar_ClearsMatchingSelection(t *testing.T) {
	s := newTestService()
	_, err := s.SelectCar("5")
	require.NoError(t, err)

	require.NoError(t, s.DeleteCar("5"))
	assert.Nil(t, s.SelectedCar())

	// A non-matching delete leaves the selection alone.
	_, err = s.SelectCar("1")
	require.NoError(t, err)
	require.NoError(t, s.DeleteCar("2"))
	assert.NotNil(t, s.SelectedCar())
}

func TestToggleStatus_IsAnInvolution(t *testing.T) {
	s := newTestService()

	first, err := s.ToggleStatus("1")
	require.NoError(t, err)
	assert.Equal(t, car.StatusSoldOut, first.Status)

	second, err := s.ToggleStatus("1")
	require.NoError(t, err)
	assert.Equal(t, car.StatusAvailable, second.Status)

	_, err = s.ToggleStatus("missing")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestToggleStatus_AffectsStatusFilter(t *testing.T) {
	s := newTestService()
	s.SetFilters(car.FilterPatch{Status: statusList(car.StatusSoldOut)})
	require.Len(t, s.FilteredCars(), 2)

	_, err := s.ToggleStatus("3") // Creta back to Available
	require.NoError(t, err)
	assert.Equal(t, []string{"Mahindra XUV500 W10 2018"}, titles(s.FilteredCars()))
}

func TestSelectCar(t *testing.T) {
	s := newTestService()

	selected, err := s.SelectCar("6")
	require.NoError(t, err)
	assert.Equal(t, "Mahindra XUV500 W10 2018", selected.Title)
	assert.Equal(t, selected, s.SelectedCar())

	_, err = s.SelectCar("missing")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	s.ClearSelection()
	assert.Nil(t, s.SelectedCar())
}

func TestFeaturedCars_FirstThreeInSeedOrder(t *testing.T) {
	s := newTestService()

	featured := s.FeaturedCars()
	require.Len(t, featured, 3)
	assert.Equal(t, []string{
		"Maruti Swift VXI 2018",
		"Honda City SV 2019",
		"Hyundai Creta SX 2020",
	}, titles(featured))
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := newTestService()

	snapshot := s.Cars()
	snapshot[0].Title = "mutated"

	stored, err := s.GetCar("1")
	require.NoError(t, err)
	assert.Equal(t, "Maruti Swift VXI 2018", stored.Title)
}

func TestEmptyCatalog(t *testing.T) {
	s := NewCatalogService(nil, ws.Nop{}, zap.NewNop())

	assert.Empty(t, s.Cars())
	assert.Empty(t, s.FilteredCars())
	assert.Empty(t, s.FeaturedCars())
	assert.Equal(t, car.PriceRange{}, s.PriceBounds())
}

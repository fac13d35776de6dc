// internal/handlers/car/car_handler.go
package car

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jeyamcars-service/internal/domain/car"
	"jeyamcars-service/internal/middleware"
	xerrors "jeyamcars-service/internal/pkg/errors"
	"jeyamcars-service/internal/pkg/response"
	"jeyamcars-service/internal/service/catalog"
)

type CarHandler struct {
	catalog *catalog.CatalogService
	logger  *zap.Logger
}

func NewCarHandler(catalogService *catalog.CatalogService, logger *zap.Logger) *CarHandler {
	return &CarHandler{
		catalog: catalogService,
		logger:  logger,
	}
}

// ========== Public Endpoints ==========

// ListCars returns the derived filtered view.
func (h *CarHandler) ListCars(c *gin.Context) {
	cars := h.catalog.FilteredCars()
	response.Success(c, http.StatusOK, "cars retrieved", car.CarListResponse{
		Cars:  cars,
		Total: len(cars),
	})
}

// FeaturedCars returns the landing-page listings.
func (h *CarHandler) FeaturedCars(c *gin.Context) {
	cars := h.catalog.FeaturedCars()
	response.Success(c, http.StatusOK, "featured cars retrieved", car.CarListResponse{
		Cars:  cars,
		Total: len(cars),
	})
}

// GetCar returns one listing by id.
func (h *CarHandler) GetCar(c *gin.Context) {
	result, err := h.catalog.GetCar(c.Param("id"))
	if err != nil {
		response.NotFound(c, "car not found")
		return
	}
	response.Success(c, http.StatusOK, "car retrieved", result)
}

// GetFilters returns the active filter config and the full-collection
// price bounds.
func (h *CarHandler) GetFilters(c *gin.Context) {
	response.Success(c, http.StatusOK, "filters retrieved", car.FilterStateResponse{
		Filters: h.catalog.Filters(),
		Bounds:  h.catalog.PriceBounds(),
	})
}

// SetFilters merges a filter patch and returns the resulting view.
func (h *CarHandler) SetFilters(c *gin.Context) {
	var patch car.FilterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid filter patch", err)
		return
	}

	filters := h.catalog.SetFilters(patch)
	cars := h.catalog.FilteredCars()
	response.Success(c, http.StatusOK, "filters applied", gin.H{
		"filters": filters,
		"cars":    cars,
		"total":   len(cars),
	})
}

// ResetFilters restores the initial filter config.
func (h *CarHandler) ResetFilters(c *gin.Context) {
	filters := h.catalog.ResetFilters()
	cars := h.catalog.FilteredCars()
	response.Success(c, http.StatusOK, "filters reset", gin.H{
		"filters": filters,
		"cars":    cars,
		"total":   len(cars),
	})
}

// ========== Admin Endpoints ==========

// CreateCar adds a listing after store-boundary validation.
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req car.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.catalog.AddCar(req)
	if err != nil {
		h.respondMutationError(c, err, "failed to create car")
		return
	}

	admin, _ := middleware.GetUsername(c)
	h.logger.Info("admin created car",
		zap.String("car_id", result.ID),
		zap.String("admin", admin),
	)
	response.Success(c, http.StatusCreated, "car created successfully", result)
}

// UpdateCar applies a partial patch to a listing.
func (h *CarHandler) UpdateCar(c *gin.Context) {
	var patch car.UpdateCarRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.catalog.UpdateCar(c.Param("id"), patch)
	if err != nil {
		h.respondMutationError(c, err, "failed to update car")
		return
	}

	response.Success(c, http.StatusOK, "car updated successfully", result)
}

// DeleteCar removes a listing.
func (h *CarHandler) DeleteCar(c *gin.Context) {
	if err := h.catalog.DeleteCar(c.Param("id")); err != nil {
		h.respondMutationError(c, err, "failed to delete car")
		return
	}

	admin, _ := middleware.GetUsername(c)
	h.logger.Info("admin deleted car",
		zap.String("car_id", c.Param("id")),
		zap.String("admin", admin),
	)
	response.Success(c, http.StatusOK, "car deleted successfully", nil)
}

// ToggleStatus flips a listing between Available and Sold Out.
func (h *CarHandler) ToggleStatus(c *gin.Context) {
	result, err := h.catalog.ToggleStatus(c.Param("id"))
	if err != nil {
		h.respondMutationError(c, err, "failed to toggle car status")
		return
	}
	response.Success(c, http.StatusOK, "car status updated", result)
}

// SelectCar marks a listing as the one under edit.
func (h *CarHandler) SelectCar(c *gin.Context) {
	result, err := h.catalog.SelectCar(c.Param("id"))
	if err != nil {
		h.respondMutationError(c, err, "failed to select car")
		return
	}
	response.Success(c, http.StatusOK, "car selected", result)
}

// ClearSelection drops the current selection.
func (h *CarHandler) ClearSelection(c *gin.Context) {
	h.catalog.ClearSelection()
	response.Success(c, http.StatusOK, "selection cleared", nil)
}

// GetSelection returns the listing under edit, or null.
func (h *CarHandler) GetSelection(c *gin.Context) {
	response.Success(c, http.StatusOK, "selection retrieved", h.catalog.SelectedCar())
}

func (h *CarHandler) respondMutationError(c *gin.Context, err error, message string) {
	if ve, ok := xerrors.AsValidation(err); ok {
		response.ValidationError(c, message, err, ve.Fields)
		return
	}
	if errors.Is(err, xerrors.ErrNotFound) {
		response.NotFound(c, "car not found")
		return
	}
	h.logger.Error(message, zap.Error(err))
	response.Error(c, http.StatusInternalServerError, message, err)
}

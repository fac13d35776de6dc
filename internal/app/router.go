// internal/app/router.go
package app

import (
	"github.com/gin-gonic/gin"

	authHandler "jeyamcars-service/internal/handlers/auth"
	carHandler "jeyamcars-service/internal/handlers/car"
	"jeyamcars-service/internal/middleware"
	"jeyamcars-service/internal/ws"
)

type Handlers struct {
	CarHandler     *carHandler.CarHandler
	AuthHandler    *authHandler.AuthHandler
	WSHandler      *ws.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.WSHandler.HandleConnection)

	// ==================== Auth ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.GET("/me", h.AuthHandler.GetMe)
	}

	// ==================== Public Catalog ====================
	cars := api.Group("/cars")
	{
		cars.GET("", h.CarHandler.ListCars)
		cars.GET("/featured", h.CarHandler.FeaturedCars)
		cars.GET("/filters", h.CarHandler.GetFilters)
		cars.PUT("/filters", h.CarHandler.SetFilters)
		cars.DELETE("/filters", h.CarHandler.ResetFilters)
		cars.GET("/:id", h.CarHandler.GetCar)
	}

	// ==================== Admin Console ====================
	admin := api.Group("/cars")
	admin.Use(h.AuthMiddleware.Auth())
	{
		admin.POST("", h.CarHandler.CreateCar)
		admin.PUT("/:id", h.CarHandler.UpdateCar)
		admin.DELETE("/:id", h.CarHandler.DeleteCar)
		admin.PUT("/:id/status", h.CarHandler.ToggleStatus)
		admin.PUT("/:id/select", h.CarHandler.SelectCar)
		admin.GET("/selection/current", h.CarHandler.GetSelection)
		admin.DELETE("/selection/current", h.CarHandler.ClearSelection)
	}
}

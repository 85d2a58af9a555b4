package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"espuma/handlers"
	"espuma/middleware"
	"espuma/utils"
)

// RegisterCatalogRoutes registers the static reference-data endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup) {
	api.GET("/locations", handlers.GetLocationsHandler)
	api.GET("/services", handlers.GetServicesHandler)
	api.GET("/products", handlers.GetProductsHandler)
}

// RegisterBookingRoutes sets up the availability, reservation and checkout
// endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, h *handlers.BookingHandler) {
	api.GET("/availability", h.GetAvailability)
	api.POST("/availability/check", h.CheckAvailability)
	api.POST("/reservations", h.CreateReservation)
	api.DELETE("/reservations/:id", h.CancelReservation)
	api.GET("/bookings/:id", h.GetBookingStatus)
	api.POST("/checkout", h.ConfirmOrder)
}

// RegisterCartRoutes sets up the cart aggregate endpoints.
func RegisterCartRoutes(api *gin.RouterGroup, h *handlers.CartHandler) {
	api.GET("/cart", h.GetCart)
	api.POST("/cart/items", h.AddItem)
	api.DELETE("/cart/items/:id", h.RemoveItem)
	api.PATCH("/cart/items/:id/quantity", h.UpdateQuantity)
	api.PATCH("/cart/items/:id/booking", h.UpdateBooking)
	api.DELETE("/cart", h.ClearCart)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bookingH *handlers.BookingHandler, cartH *handlers.CartHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.SessionTokenHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionTokenHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware())
	RegisterCatalogRoutes(api)
	RegisterBookingRoutes(api, bookingH)
	RegisterCartRoutes(api, cartH)
}

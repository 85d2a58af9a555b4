package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"espuma/models"
)

// GetLocationsHandler lists the branch catalog.
func GetLocationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": models.Locations})
}

// GetServicesHandler lists the bookable service catalog.
func GetServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": models.Services, "vehicleTypes": models.VehicleTypes})
}

// GetProductsHandler lists the retail product catalog.
func GetProductsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": models.Products})
}

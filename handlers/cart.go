package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"espuma/models"
	"espuma/services/cart"
	"espuma/utils"
)

// CartHandler exposes the cart aggregate over HTTP.
type CartHandler struct {
	Service cart.CartService
	Logger  *zap.Logger
}

// NewCartHandler builds a CartHandler.
func NewCartHandler(svc cart.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{Service: svc, Logger: logger}
}

func (h *CartHandler) respond(c *gin.Context, state models.CartState) {
	c.JSON(http.StatusOK, gin.H{"cart": state, "summary": cart.Summarize(state)})
}

// GetCart returns the session's cart with its gating summary.
func (h *CartHandler) GetCart(c *gin.Context) {
	state, err := h.Service.GetCart(c.Request.Context(), SessionID(c))
	if err != nil {
		h.Logger.Error("GetCart failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load cart", err.Error())
		return
	}
	h.respond(c, state)
}

// AddItem resolves a catalog entry into a cart line and applies the Add
// transition.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		Type        string `json:"type" binding:"required"`
		ID          string `json:"id" binding:"required"`
		VehicleType string `json:"vehicleType,omitempty"`
		Quantity    int    `json:"quantity,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	item, err := buildCartItem(req.Type, req.ID, req.VehicleType, req.Quantity)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid item", err.Error())
		return
	}

	state, err := h.Service.AddToCart(c.Request.Context(), SessionID(c), item)
	if err != nil {
		h.Logger.Error("AddItem failed", zap.String("itemID", req.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", err.Error())
		return
	}
	h.respond(c, state)
}

// RemoveItem applies the Remove transition.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	state, err := h.Service.RemoveFromCart(c.Request.Context(), SessionID(c), c.Param("id"))
	if err != nil {
		h.Logger.Error("RemoveItem failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", err.Error())
		return
	}
	h.respond(c, state)
}

// UpdateQuantity applies the UpdateQuantity transition; quantity zero removes
// the item.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	state, err := h.Service.UpdateQuantity(c.Request.Context(), SessionID(c), c.Param("id"), *req.Quantity)
	if err != nil {
		h.Logger.Error("UpdateQuantity failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", err.Error())
		return
	}
	h.respond(c, state)
}

// UpdateBooking attaches reservation details to a service line.
func (h *CartHandler) UpdateBooking(c *gin.Context) {
	var details models.BookingDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if details.Date == "" || details.TimeSlot == "" || details.LocationID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date, timeSlot and locationId are required")
		return
	}
	if details.LocationName == "" {
		if loc, ok := models.FindLocation(details.LocationID); ok {
			details.LocationName = loc.Name
		}
	}

	state, err := h.Service.UpdateItemBooking(c.Request.Context(), SessionID(c), c.Param("id"), &details)
	if err != nil {
		h.Logger.Error("UpdateBooking failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update cart", err.Error())
		return
	}
	h.respond(c, state)
}

// ClearCart resets the session's cart to empty.
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.Service.ClearCart(c.Request.Context(), SessionID(c)); err != nil {
		h.Logger.Error("ClearCart failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// buildCartItem resolves a catalog id into a priced cart line. Services price
// by vehicle type and always enter with quantity 1.
func buildCartItem(itemType, id, vehicleType string, quantity int) (models.CartItem, error) {
	switch itemType {
	case models.ItemTypeService:
		svc, ok := models.FindService(id)
		if !ok {
			return models.CartItem{}, fmt.Errorf("unknown service %q", id)
		}
		if vehicleType == "" {
			vehicleType = "sedan"
		}
		price, ok := svc.Prices[vehicleType]
		if !ok {
			return models.CartItem{}, fmt.Errorf("service %q has no price for vehicle type %q", id, vehicleType)
		}
		return models.CartItem{
			ID:          svc.ID,
			Type:        models.ItemTypeService,
			Name:        svc.Name,
			Price:       price,
			Quantity:    1,
			DurationMin: svc.DurationMin,
		}, nil
	case models.ItemTypeProduct:
		prd, ok := models.FindProduct(id)
		if !ok {
			return models.CartItem{}, fmt.Errorf("unknown product %q", id)
		}
		if quantity < 1 {
			quantity = 1
		}
		return models.CartItem{
			ID:       prd.ID,
			Type:     models.ItemTypeProduct,
			Name:     prd.Name,
			Price:    prd.Price,
			Quantity: quantity,
		}, nil
	default:
		return models.CartItem{}, fmt.Errorf("unknown item type %q", itemType)
	}
}

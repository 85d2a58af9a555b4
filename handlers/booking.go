package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"espuma/models"
	"espuma/services/booking"
	"espuma/utils"
)

// BookingHandler exposes availability, reservation and checkout endpoints.
type BookingHandler struct {
	Service  booking.BookingService
	Checkout *booking.DefaultCheckoutService
	Logger   *zap.Logger
}

// NewBookingHandler builds a BookingHandler.
func NewBookingHandler(svc booking.BookingService, checkout *booking.DefaultCheckoutService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Checkout: checkout, Logger: logger}
}

// GetAvailability lists every grid slot with its availability for a location,
// date and service duration.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	locationID := c.Query("locationId")
	date := c.Query("date")
	if locationID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "locationId and date are required")
		return
	}
	durationMin, err := strconv.Atoi(c.DefaultQuery("duration", "30"))
	if err != nil || durationMin <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", "duration must be a positive integer of minutes")
		return
	}

	slots, err := h.Service.ListAvailableSlots(c.Request.Context(), locationID, date, durationMin)
	if err != nil {
		h.Logger.Error("GetAvailability failed", zap.String("locationID", locationID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"locationId": locationID, "date": date, "slots": slots})
}

// CheckAvailability checks a single slot range.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req struct {
		LocationID  string `json:"locationId" binding:"required"`
		Date        string `json:"date" binding:"required"`
		TimeSlot    string `json:"timeSlot" binding:"required"`
		DurationMin int    `json:"durationMin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Service.CheckAvailability(c.Request.Context(), req.LocationID, req.Date, req.TimeSlot, req.DurationMin)
	if err != nil {
		h.Logger.Error("CheckAvailability failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to check availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateReservation takes a 15-minute hold on a slot for the caller's session.
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	sessionID := SessionID(c)
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Reserve(c.Request.Context(), req, sessionID)
	if err != nil {
		h.Logger.Error("CreateReservation failed", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to reserve slot", err.Error())
		return
	}
	if !result.Success {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CancelReservation releases a hold owned by the caller's session.
func (h *BookingHandler) CancelReservation(c *gin.Context) {
	sessionID := SessionID(c)
	reservationID := c.Param("id")

	ok, err := h.Service.Cancel(c.Request.Context(), reservationID, sessionID)
	if err != nil {
		h.Logger.Error("CancelReservation failed", zap.String("reservationID", reservationID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel reservation", err.Error())
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", "no reservation with that id belongs to this session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// GetBookingStatus returns a confirmed booking record.
func (h *BookingHandler) GetBookingStatus(c *gin.Context) {
	bookingID := c.Param("id")
	b, err := h.Service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.Logger.Error("GetBookingStatus failed", zap.String("bookingID", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	if b == nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmOrder finalizes the session's cart into confirmed bookings and an
// order confirmation code.
func (h *BookingHandler) ConfirmOrder(c *gin.Context) {
	sessionID := SessionID(c)
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	confirmation, conflicts, err := h.Checkout.ConfirmOrder(c.Request.Context(), sessionID, req)
	if err != nil {
		if _, ok := err.(*booking.BookingError); ok {
			utils.JSONError(c, http.StatusBadRequest, "checkout rejected", err.Error())
			return
		}
		h.Logger.Error("ConfirmOrder failed", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "checkout failed", err.Error())
		return
	}
	if len(conflicts) > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "conflicts": conflicts})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "confirmation": confirmation})
}

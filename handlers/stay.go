// File: handlers/stay.go
package handlers

import (
	"errors"
	"net/http"

	"villamar/services/booking"
	"villamar/services/pricing"
	"villamar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StayHandler serves the public quoting and availability endpoints.
type StayHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

func NewStayHandler(svc booking.BookingService, logger *zap.Logger) *StayHandler {
	return &StayHandler{svc: svc, logger: logger}
}

type stayRequest struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Guests   int    `json:"guests"`
}

// QuoteStayHandler prices a stay for display. The quote is non-binding.
func (h *StayHandler) QuoteStayHandler(c *gin.Context) {
	var input stayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Guests <= 0 {
		input.Guests = 1
	}

	quote, err := h.svc.QuoteStay(c.Request.Context(), input.CheckIn, input.CheckOut, input.Guests)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidRange) {
			utils.JSONError(c, http.StatusBadRequest, "invalid stay range", err.Error())
			return
		}
		h.logger.Error("failed to quote stay", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to quote stay", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// ValidateStayHandler applies the stay rules and returns either ok or the
// first rejection with its bilingual message.
func (h *StayHandler) ValidateStayHandler(c *gin.Context) {
	var input stayRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rejection, err := h.svc.ValidateStay(c.Request.Context(), input.CheckIn, input.CheckOut)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidRange) {
			utils.JSONError(c, http.StatusBadRequest, "invalid stay range", err.Error())
			return
		}
		h.logger.Error("failed to validate stay", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to validate stay", "")
		return
	}

	if rejection != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "rejection": rejection})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AvailabilityHandler answers the cheap pre-check used while the guest is
// still picking dates. Never authoritative.
func (h *StayHandler) AvailabilityHandler(c *gin.Context) {
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	if checkIn == "" || checkOut == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "checkIn and checkOut query parameters are required")
		return
	}

	available, err := h.svc.IsAvailable(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidRange) {
			utils.JSONError(c, http.StatusBadRequest, "invalid stay range", err.Error())
			return
		}
		h.logger.Error("availability check failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "availability check failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// CalendarHandler returns the booked ranges intersecting [from, to) for the
// month renderer.
func (h *StayHandler) CalendarHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "from and to query parameters are required")
		return
	}

	periods, err := h.svc.CalendarFeed(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidRange) {
			utils.JSONError(c, http.StatusBadRequest, "invalid calendar range", err.Error())
			return
		}
		h.logger.Error("calendar feed failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "calendar feed failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"booked": periods})
}

// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	reservationRepo "villamar/database/repository/reservation"
	"villamar/services/booking"
	"villamar/services/pricing"
	"villamar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the session and confirmation endpoints.
type BookingHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// OpenSessionHandler quotes a stay and opens a quoted session the guest can
// confirm against.
func (h *BookingHandler) OpenSessionHandler(c *gin.Context) {
	var input struct {
		CheckIn  string `json:"checkIn" binding:"required"`
		CheckOut string `json:"checkOut" binding:"required"`
		Guests   int    `json:"guests"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Guests <= 0 {
		input.Guests = 1
	}

	session, err := h.svc.OpenSession(c.Request.Context(), input.CheckIn, input.CheckOut, input.Guests)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidRange) {
			utils.JSONError(c, http.StatusBadRequest, "invalid stay range", err.Error())
			return
		}
		h.logger.Error("failed to open booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to open booking session", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.SessionID,
		"quote":     session.Quote,
	})
}

// ConfirmBookingHandler runs one booking attempt to its terminal state. The
// three outcomes map to statuses the front end branches on: committed (200),
// rejected (422), conflicted (409).
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.SessionID == "" && (req.CheckIn == "" || req.CheckOut == "") {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "either sessionId or checkIn/checkOut is required")
		return
	}
	if req.Guest.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "guest email is required")
		return
	}

	outcome, err := h.svc.AttemptBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
		case errors.Is(err, pricing.ErrInvalidRange):
			utils.JSONError(c, http.StatusBadRequest, "invalid stay range", err.Error())
		default:
			h.logger.Error("booking attempt failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "booking attempt failed", "")
		}
		return
	}

	switch outcome.Status {
	case booking.OutcomeRejected:
		c.JSON(http.StatusUnprocessableEntity, outcome)
	case booking.OutcomeConflicted:
		c.JSON(http.StatusConflict, outcome)
	default:
		c.JSON(http.StatusOK, outcome)
	}
}

// ConfirmPaymentHandler records the payment processor's success callback:
// the reservation transitions from pending to confirmed.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	reservationID := c.Param("id")
	if reservationID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "reservation id is required")
		return
	}

	if err := h.svc.ConfirmReservation(c.Request.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, booking.ErrReservationNotFound):
			utils.JSONError(c, http.StatusNotFound, "reservation not found", "")
		case errors.Is(err, reservationRepo.ErrNotPending):
			utils.JSONError(c, http.StatusConflict, "reservation is not awaiting confirmation", "")
		default:
			h.logger.Error("failed to confirm reservation", zap.String("reservationID", reservationID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to confirm reservation", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "confirmed", "reservationId": reservationID})
}

// CancelReservationHandler releases a reservation's dates.
func (h *BookingHandler) CancelReservationHandler(c *gin.Context) {
	reservationID := c.Param("id")
	if reservationID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "reservation id is required")
		return
	}

	if err := h.svc.CancelReservation(c.Request.Context(), reservationID); err != nil {
		if errors.Is(err, booking.ErrReservationNotFound) {
			utils.JSONError(c, http.StatusNotFound, "reservation not found", "")
			return
		}
		h.logger.Error("failed to cancel reservation", zap.String("reservationID", reservationID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel reservation", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "reservationId": reservationID})
}

// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Public stay endpoints
	QuoteStayHandler    gin.HandlerFunc
	ValidateStayHandler gin.HandlerFunc
	AvailabilityHandler gin.HandlerFunc
	CalendarHandler     gin.HandlerFunc

	// Booking endpoints
	OpenSessionHandler       gin.HandlerFunc
	ConfirmBookingHandler    gin.HandlerFunc
	ConfirmPaymentHandler    gin.HandlerFunc
	CancelReservationHandler gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}

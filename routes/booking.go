package routes

import (
	"villamar/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/quote", hb.OpenSessionHandler)
		bookingGroup.POST("/confirm", hb.ConfirmBookingHandler)
		bookingGroup.POST("/:id/confirm-payment", hb.ConfirmPaymentHandler)
		bookingGroup.POST("/:id/cancel", hb.CancelReservationHandler)
	}
}

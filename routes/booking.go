package routes

import (
	"astromarket/handlers"
	"astromarket/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the Brahma booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/brahma")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware())
		bookingGroup.GET("/bookings", hb.Booking.ListBookingsHandler)

		session := bookingGroup.Group("/session")
		session.POST("", hb.Booking.StartSessionHandler)
		session.GET("/:sessionID", hb.Booking.GetSessionHandler)
		session.GET("/:sessionID/dates", hb.Booking.GetDatesHandler)
		session.PUT("/:sessionID/astrologer", hb.Booking.SelectAstrologerHandler)
		session.PUT("/:sessionID/selection", hb.Booking.UpdateSelectionHandler)
		session.POST("/:sessionID/payment", hb.Booking.ProcessPaymentHandler)
		session.POST("/:sessionID/confirm", hb.Booking.ConfirmBookingHandler)
		session.POST("/:sessionID/back", hb.Booking.BackHandler)
		session.DELETE("/:sessionID", hb.Booking.CancelSessionHandler)
	}
}

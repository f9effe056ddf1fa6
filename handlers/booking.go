package handlers

import (
	"errors"
	"net/http"

	"astromarket/middleware"
	"astromarket/services/booking"
	"astromarket/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the Brahma booking flow.
type BookingHandler struct {
	Service booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// bookingErrorStatus maps booking service errors onto HTTP status codes.
func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound),
		errors.Is(err, booking.ErrUnknownAstrologer):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrPaymentInProgress),
		errors.Is(err, booking.ErrPaymentCompleted),
		errors.Is(err, booking.ErrPaymentIncomplete):
		return http.StatusConflict
	case errors.Is(err, booking.ErrDateTimeRequired),
		errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidTime),
		errors.Is(err, booking.ErrInvalidDuration),
		errors.Is(err, booking.ErrInvalidPaymentData):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *BookingHandler) fail(c *gin.Context, message string, err error) {
	utils.JSONError(c, bookingErrorStatus(err), message, err.Error())
}

// StartSessionHandler opens a new Brahma flow on the astrologer list.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	session, err := h.Service.StartSession(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		h.fail(c, "Failed to start booking session", err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), middleware.CurrentUserID(c), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "Failed to load booking session", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetDatesHandler lists the dates that can be booked.
func (h *BookingHandler) GetDatesHandler(c *gin.Context) {
	if _, err := h.Service.GetSession(c.Request.Context(), middleware.CurrentUserID(c), c.Param("sessionID")); err != nil {
		h.fail(c, "Failed to load booking session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": h.Service.DateOptions()})
}

func (h *BookingHandler) SelectAstrologerHandler(c *gin.Context) {
	var input struct {
		AstrologerID string `json:"astrologerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Service.SelectAstrologer(c.Request.Context(), middleware.CurrentUserID(c), c.Param("sessionID"), input.AstrologerID)
	if err != nil {
		h.fail(c, "Failed to select astrologer", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) UpdateSelectionHandler(c *gin.Context) {
	var input booking.SelectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	session, err := h.Service.UpdateSelection(c.Request.Context(), middleware.CurrentUserID(c), c.Param("sessionID"), input)
	if err != nil {
		h.fail(c, "Failed to update booking", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ProcessPaymentHandler starts the payment; clients poll the session for the outcome.
func (h *BookingHandler) ProcessPaymentHandler(c *gin.Context) {
	session, err := h.Service.ProcessPayment(c.Request.Context(), middleware.CurrentUserID(c), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "Failed to start payment", err)
		return
	}
	c.JSON(http.StatusAccepted, session)
}

func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	session, err := h.Service.ConfirmBooking(c.Request.Context(), middleware.CurrentUserID(c), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "Failed to confirm booking", err)
		return
	}
	getLogger(c).Info("Booking confirmed via API", zap.String("session", session.ID))
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) BackHandler(c *gin.Context) {
	session, err := h.Service.Back(c.Request.Context(), middleware.CurrentUserID(c), c.Param("sessionID"))
	if err != nil {
		h.fail(c, "Failed to go back", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), middleware.CurrentUserID(c), c.Param("sessionID")); err != nil {
		h.fail(c, "Failed to cancel booking session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		h.fail(c, "Failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

package booking

import (
	"errors"
	"net/http"
	"strconv"

	"theracare/internal/middleware"
	"theracare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	// the unscoped listing is an admin view; everyone else goes through the
	// per-user and per-therapist listings
	rg.GET("/bookings", middleware.AdminOnly(), h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.UpdateBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
	rg.GET("/therapists/:therapist_id/bookings", h.ListByTherapist)
	rg.GET("/users/:user_id/bookings", h.ListByUser)
	rg.GET("/slots/:slot_id/availability", h.CheckSlotAvailability)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to fetch booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListBookings(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid limit")
			return
		}
		limit = v
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err, "Failed to fetch bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to cancel booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := h.service.DeleteBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to delete booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListByTherapist(c *gin.Context) {
	therapistID, ok := pathID(c, "therapist_id")
	if !ok {
		return
	}

	bookings, err := h.service.ListBookingsByTherapist(c.Request.Context(), therapistID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch therapist bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	bookings, err := h.service.ListBookingsByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch user bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) CheckSlotAvailability(c *gin.Context) {
	slotID, ok := pathID(c, "slot_id")
	if !ok {
		return
	}

	avail, err := h.service.CheckSlotAvailability(c.Request.Context(), slotID)
	if err != nil {
		h.writeError(c, err, "Failed to check slot availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"availability": avail})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTherapistNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrSlotNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotTherapist):
		response.Error(c, http.StatusBadRequest, "INVALID_ROLE", err.Error())
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrSlotUnavailable):
		response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", err.Error())
	case errors.Is(err, ErrSlotConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", err.Error())
	case errors.Is(err, ErrBookingCancelled):
		response.Error(c, http.StatusConflict, "BOOKING_CANCELLED", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name)
		return 0, false
	}
	return id, true
}

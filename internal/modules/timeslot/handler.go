package timeslot

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

// RegisterRoutes mounts the slot endpoints. Only therapists manage slots;
// reads stay open to any authenticated user.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/timeslots/generate", middleware.TherapistOnly(), h.GenerateSlots)
	rg.GET("/timeslots/:id", h.GetSlot)
	rg.PUT("/timeslots/:id", middleware.TherapistOnly(), h.UpdateSlot)
	rg.DELETE("/timeslots/:id", middleware.TherapistOnly(), h.DeleteSlot)
	rg.GET("/therapists/:therapist_id/timeslots", h.ListByTherapistAndDate)
	rg.GET("/therapists/:therapist_id/timeslots/available", h.ListAvailableInRange)
}

func (h *Handler) GenerateSlots(c *gin.Context) {
	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slots, err := h.service.GenerateSlots(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to generate time slots")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"slots": slots})
}

func (h *Handler) GetSlot(c *gin.Context) {
	id, ok := slotID(c, "id")
	if !ok {
		return
	}

	slot, err := h.service.GetSlot(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to fetch time slot")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slot": slot})
}

func (h *Handler) UpdateSlot(c *gin.Context) {
	id, ok := slotID(c, "id")
	if !ok {
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	slot, err := h.service.UpdateSlot(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update time slot")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slot": slot})
}

func (h *Handler) DeleteSlot(c *gin.Context) {
	id, ok := slotID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSlot(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete time slot")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListByTherapistAndDate(c *gin.Context) {
	therapistID, ok := slotID(c, "therapist_id")
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	slots, err := h.service.ListByTherapistAndDate(c.Request.Context(), therapistID, date)
	if err != nil {
		h.writeError(c, err, "Failed to fetch time slots")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) ListAvailableInRange(c *gin.Context) {
	therapistID, ok := slotID(c, "therapist_id")
	if !ok {
		return
	}
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from and to query parameters are required")
		return
	}

	slots, err := h.service.ListAvailableInRange(c.Request.Context(), therapistID, from, to)
	if err != nil {
		h.writeError(c, err, "Failed to fetch available time slots")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrTherapistNotFound), errors.Is(err, ErrSlotNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotTherapist), errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrDuplicateSlot), errors.Is(err, ErrSlotInUse):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func slotID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid "+name)
		return 0, false
	}
	return id, true
}

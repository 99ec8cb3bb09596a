package feedback

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/feedback", h.CreateFeedback)
	rg.GET("/feedback/:id", h.GetFeedback)
	rg.PUT("/feedback/:id", h.UpdateFeedback)
	rg.DELETE("/feedback/:id", h.DeleteFeedback)
	rg.GET("/sessions/:id/feedback", h.ListBySession)
}

func (h *Handler) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.CreateFeedback(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create feedback")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"feedback": f})
}

func (h *Handler) GetFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	f, err := h.service.GetFeedback(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to fetch feedback")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"feedback": f})
}

func (h *Handler) UpdateFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.service.UpdateFeedback(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update feedback")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"feedback": f})
}

func (h *Handler) DeleteFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteFeedback(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete feedback")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListBySession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.service.ListBySession(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to fetch feedback")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"feedback": out})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrFeedbackNotFound), errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

package session

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

// RegisterRoutes mounts the session endpoints. Session notes and diagnostics
// are written by therapists only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", middleware.TherapistOnly(), h.CreateSession)
	rg.GET("/sessions", h.ListSessions)
	rg.GET("/sessions/:id", h.GetSession)
	rg.PUT("/sessions/:id", middleware.TherapistOnly(), h.UpdateSession)
	rg.DELETE("/sessions/:id", middleware.TherapistOnly(), h.DeleteSession)
	rg.POST("/sessions/:id/diagnostics", middleware.TherapistOnly(), h.AddDiagnostic)
	rg.GET("/sessions/:id/diagnostics", h.ListDiagnostics)
}

func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.CreateSession(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create session")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": sess})
}

func (h *Handler) GetSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sess, err := h.service.GetSession(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to fetch session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) ListSessions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	sessions, err := h.service.ListSessions(c.Request.Context(), limit)
	if err != nil {
		h.writeError(c, err, "Failed to fetch sessions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) UpdateSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.UpdateSession(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) DeleteSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) AddDiagnostic(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CreateDiagnosticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.AddDiagnostic(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to add diagnostic")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"diagnostic": d})
}

func (h *Handler) ListDiagnostics(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.service.ListDiagnostics(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to fetch diagnostics")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"diagnostics": out})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrBookingNotFound):
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
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid session id")
		return 0, false
	}
	return id, true
}

package messaging

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
	rg.POST("/messages", h.SendMessage)
	rg.GET("/messages", h.ListMessages)
	rg.GET("/messages/conversation/:user_id", h.GetConversation)
	rg.POST("/messages/:id/read", h.MarkRead)
	rg.DELETE("/messages/:id", h.DeleteMessage)
}

func (h *Handler) SendMessage(c *gin.Context) {
	senderID := c.GetInt64("user_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	m, err := h.service.SendMessage(c.Request.Context(), senderID, req)
	if err != nil {
		h.writeError(c, err, "Failed to send message")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": m})
}

func (h *Handler) ListMessages(c *gin.Context) {
	userID := c.GetInt64("user_id")

	msgs, err := h.service.ListMessages(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch messages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": msgs})
}

func (h *Handler) GetConversation(c *gin.Context) {
	userID := c.GetInt64("user_id")

	otherID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || otherID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	msgs, err := h.service.GetConversation(c.Request.Context(), userID, otherID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch conversation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": msgs})
}

func (h *Handler) MarkRead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, ok := messageID(c)
	if !ok {
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err, "Failed to mark message as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, ok := messageID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err, "Failed to delete message")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrMessageNotFound), errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrNotParticipant):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrSelfMessage), errors.Is(err, ErrEmptyContent):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func messageID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid message id")
		return 0, false
	}
	return id, true
}

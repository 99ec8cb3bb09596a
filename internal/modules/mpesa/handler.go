package mpesa

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

// RegisterRoutes mounts the payment endpoints that require a token.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/stkpush", h.InitiatePayment)
	rg.GET("/payments/:checkout_id", h.GetTransaction)
	rg.GET("/bookings/:id/payments", h.ListByBooking)
}

// RegisterCallbackRoute mounts the gateway-facing callback; Daraja
// cannot send a bearer token, so it stays outside the auth group.
func (h *Handler) RegisterCallbackRoute(rg *gin.RouterGroup) {
	rg.POST("/payments/callback", h.HandleCallback)
}

func (h *Handler) InitiatePayment(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.InitiatePayment(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to initiate payment")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"transaction": t})
}

func (h *Handler) HandleCallback(c *gin.Context) {
	var payload CallbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid callback payload")
		return
	}

	if err := h.service.HandleCallback(c.Request.Context(), payload); err != nil {
		h.writeError(c, err, "Failed to process callback")
		return
	}

	// Daraja expects this exact acknowledgement shape.
	c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
}

func (h *Handler) GetTransaction(c *gin.Context) {
	checkoutID := c.Param("checkout_id")
	if checkoutID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid checkout id")
		return
	}

	t, err := h.service.GetTransaction(c.Request.Context(), checkoutID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch transaction")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"transaction": t})
}

func (h *Handler) ListByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	out, err := h.service.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.writeError(c, err, "Failed to fetch transactions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"transactions": out})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrTransactionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrInvalidPhone), errors.Is(err, ErrInvalidAmount):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrGatewayUnavailable):
		response.Error(c, http.StatusBadGateway, "GATEWAY_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests for payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments. Recording is
// restricted to roles allowed to collect money.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", middleware.RequireRoles(domain.RoleRevenueOfficer, domain.RoleAdmin), h.recordPayment)
		payments.GET("/:id", h.getPayment)
		payments.GET("/reference/:reference", h.getPaymentByReference)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a collection against a bill, atomically decrementing the bill's and the account's balances. A payment exceeding the remaining balance is rejected.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResultResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Role may not record payments"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 409 {object} ErrorResponse "Concurrent payment exhausted the balance"
// @Failure 422 {object} ErrorResponse "Amount exceeds the remaining balance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.paymentService.RecordPayment(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("reference", result.Payment.Reference))
	c.JSON(http.StatusCreated, dto.ToPaymentResultResponse(result))
}

// getPayment godoc
// @Summary Get a payment
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// getPaymentByReference godoc
// @Summary Get a payment by reference
// @Description Looks up a payment by its public receipt reference.
// @Tags payments
// @Produce json
// @Param reference path string true "Payment reference"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/reference/{reference} [get]
func (h *paymentHandler) getPaymentByReference(c *gin.Context) {
	payment, err := h.paymentService.GetPaymentByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

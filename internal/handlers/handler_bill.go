package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// billHandler handles HTTP requests for yearly bills.
type billHandler struct {
	billService    portssvc.BillSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

// newBillHandler creates a new billHandler.
func newBillHandler(bs portssvc.BillSvcFacade, ps portssvc.PaymentSvcFacade) *billHandler {
	return &billHandler{
		billService:    bs,
		paymentService: ps,
	}
}

// RegisterBillRoutes registers routes related to bills.
func RegisterBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newBillHandler(billService, paymentService)

	bills := rg.Group("/bills")
	{
		bills.GET("/:id", h.getBill)
		bills.GET("/:id/payments", h.listBillPayments)
		bills.POST("/:id/serving-status", h.updateServingStatus)
	}
}

// getBill godoc
// @Summary Get a bill
// @Description Retrieves one yearly bill by its ID.
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	bill, err := h.billService.GetBillByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// listBillPayments godoc
// @Summary List a bill's payments
// @Description Retrieves a page of payments recorded against the bill, newest first. Pass the returned nextToken to fetch the next page.
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{id}/payments [get]
func (h *billHandler) listBillPayments(c *gin.Context) {
	var params dto.ListBillPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.paymentService.ListPaymentsByBill(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateServingStatus godoc
// @Summary Update a bill's serving status
// @Description Records a delivery-status change for a printed bill, stamping the acting officer and time. Setting "Not Served" clears the stamp.
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param status body dto.UpdateServingStatusRequest true "New serving status"
// @Success 200 {object} dto.ServingStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{id}/serving-status [post]
func (h *billHandler) updateServingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateServingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateServingStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.billService.UpdateServingStatus(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to update serving status")
		return
	}
	c.JSON(http.StatusOK, resp)
}

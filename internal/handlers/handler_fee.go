package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// feeHandler handles HTTP requests for the fee schedule.
type feeHandler struct {
	feeService portssvc.FeeSvcFacade
}

// newFeeHandler creates a new feeHandler.
func newFeeHandler(fs portssvc.FeeSvcFacade) *feeHandler {
	return &feeHandler{feeService: fs}
}

// registerFeeRoutes registers routes related to the fee schedule. Reads are
// open to all staff; writes are admin only.
func registerFeeRoutes(rg *gin.RouterGroup, feeService portssvc.FeeSvcFacade) {
	h := newFeeHandler(feeService)

	fees := rg.Group("/fees")
	{
		fees.GET("", h.listFees)
		fees.GET("/active", h.getActiveFee)
		fees.POST("", adminOnly(), h.createFee)
		fees.PUT("/:id", adminOnly(), h.updateFee)
	}
}

// listFees godoc
// @Summary List the fee schedule
// @Tags fees
// @Produce json
// @Success 200 {object} dto.ListFeeStructuresResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fees [get]
func (h *feeHandler) listFees(c *gin.Context) {
	resp, err := h.feeService.ListFees(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list fee schedule")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getActiveFee godoc
// @Summary Get the active fee for a business type and category
// @Description Used by the registration form to auto-fill the current bill.
// @Tags fees
// @Produce json
// @Param businessType query string true "Business type"
// @Param category query string true "Category"
// @Success 200 {object} dto.FeeStructureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No active fee for the pair"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fees/active [get]
func (h *feeHandler) getActiveFee(c *gin.Context) {
	businessType := c.Query("businessType")
	category := c.Query("category")
	if businessType == "" || category == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "businessType and category are required"})
		return
	}
	fee, err := h.feeService.GetActiveFee(c.Request.Context(), businessType, category)
	if err != nil {
		respondError(c, err, "Failed to retrieve fee")
		return
	}
	c.JSON(http.StatusOK, dto.ToFeeStructureResponse(*fee))
}

// createFee godoc
// @Summary Create a fee structure row
// @Description Adds a yearly fee for a (businessType, category) pair. Admin only.
// @Tags fees
// @Accept json
// @Produce json
// @Param fee body dto.CreateFeeStructureRequest true "Fee details"
// @Success 201 {object} dto.FeeStructureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Active fee already exists for the pair"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fees [post]
func (h *feeHandler) createFee(c *gin.Context) {
	var req dto.CreateFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fee, err := h.feeService.CreateFee(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create fee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFeeStructureResponse(*fee))
}

// updateFee godoc
// @Summary Update a fee structure row
// @Description Changes the amount or active flag of a fee row. Admin only. Does not touch already-registered accounts.
// @Tags fees
// @Accept json
// @Produce json
// @Param id path int true "Fee ID"
// @Param fee body dto.UpdateFeeStructureRequest true "Changed fields"
// @Success 200 {object} dto.FeeStructureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /fees/{id} [put]
func (h *feeHandler) updateFee(c *gin.Context) {
	feeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || feeID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid fee ID"})
		return
	}

	var req dto.UpdateFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fee, err := h.feeService.UpdateFee(c.Request.Context(), feeID, req, actor)
	if err != nil {
		respondError(c, err, "Failed to update fee")
		return
	}
	c.JSON(http.StatusOK, dto.ToFeeStructureResponse(*fee))
}

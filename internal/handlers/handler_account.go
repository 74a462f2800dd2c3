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

// accountHandler handles HTTP requests for business and property accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	billService    portssvc.BillSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, bs portssvc.BillSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		billService:    bs,
	}
}

// registerAccountRoutes registers routes for businesses, properties and search.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, billService portssvc.BillSvcFacade) {
	h := newAccountHandler(accountService, billService)

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.registerBusiness)
		businesses.GET("", h.listBusinesses)
		businesses.GET("/:id", h.getBusiness)
		businesses.GET("/:id/bills", h.listBusinessBills)
		businesses.DELETE("/:id", adminOnly(), h.deactivateBusiness)
	}

	properties := rg.Group("/properties")
	{
		properties.POST("", h.registerProperty)
		properties.GET("", h.listProperties)
		properties.GET("/:id", h.getProperty)
		properties.GET("/:id/bills", h.listPropertyBills)
		properties.DELETE("/:id", adminOnly(), h.deactivateProperty)
	}

	rg.GET("/accounts/search", h.searchAccounts)
}

// registerBusiness godoc
// @Summary Register a business account
// @Description Registers a business, validates the declared current bill against the active fee schedule and opens the first yearly bill.
// @Tags accounts
// @Accept json
// @Produce json
// @Param business body dto.RegisterBusinessRequest true "Business details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 422 {object} ErrorResponse "Current bill does not match the fee schedule"
// @Failure 409 {object} ErrorResponse "Duplicate registration"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [post]
func (h *accountHandler) registerBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	business, err := h.accountService.RegisterBusiness(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to register business")
		return
	}

	logger.Info("Business registered", slog.String("business_id", business.ID))
	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// registerProperty godoc
// @Summary Register a property account
// @Description Registers a property with its assessed yearly bill and opens the first yearly bill.
// @Tags accounts
// @Accept json
// @Produce json
// @Param property body dto.RegisterPropertyRequest true "Property details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Duplicate registration"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /properties [post]
func (h *accountHandler) registerProperty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterProperty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	property, err := h.accountService.RegisterProperty(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to register property")
		return
	}

	logger.Info("Property registered", slog.String("property_id", property.ID))
	c.JSON(http.StatusCreated, dto.ToPropertyResponse(property))
}

// getBusiness godoc
// @Summary Get a business account
// @Description Retrieves a business with its lifetime balance and bill-delivery stats.
// @Tags accounts
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} dto.AccountDetailResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{id} [get]
func (h *accountHandler) getBusiness(c *gin.Context) {
	resp, err := h.accountService.GetBusinessByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve business")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getProperty godoc
// @Summary Get a property account
// @Description Retrieves a property with its lifetime balance and bill-delivery stats.
// @Tags accounts
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} dto.AccountDetailResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *accountHandler) getProperty(c *gin.Context) {
	resp, err := h.accountService.GetPropertyByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve property")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listBusinesses godoc
// @Summary List business accounts
// @Description Retrieves active businesses, optionally filtered by zone.
// @Tags accounts
// @Produce json
// @Param zoneID query int false "Zone ID filter"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses [get]
func (h *accountHandler) listBusinesses(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.accountService.ListAccounts(c.Request.Context(), domain.AccountTypeBusiness, params)
	if err != nil {
		respondError(c, err, "Failed to list businesses")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listProperties godoc
// @Summary List property accounts
// @Description Retrieves active properties, optionally filtered by zone.
// @Tags accounts
// @Produce json
// @Param zoneID query int false "Zone ID filter"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /properties [get]
func (h *accountHandler) listProperties(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.accountService.ListAccounts(c.Request.Context(), domain.AccountTypeProperty, params)
	if err != nil {
		respondError(c, err, "Failed to list properties")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listBusinessBills godoc
// @Summary List a business's yearly bills
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{id}/bills [get]
func (h *accountHandler) listBusinessBills(c *gin.Context) {
	resp, err := h.billService.ListBillsByAccount(c.Request.Context(), domain.AccountTypeBusiness, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listPropertyBills godoc
// @Summary List a property's yearly bills
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /properties/{id}/bills [get]
func (h *accountHandler) listPropertyBills(c *gin.Context) {
	resp, err := h.billService.ListBillsByAccount(c.Request.Context(), domain.AccountTypeProperty, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// searchAccounts godoc
// @Summary Search accounts
// @Description Matches the query against names, owners, telephones and account numbers, returning lifetime balances.
// @Tags accounts
// @Produce json
// @Param q query string true "Search query"
// @Param type query string false "Account kind filter" Enums(all, business, property) default(all)
// @Success 200 {object} dto.SearchAccountsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/search [get]
func (h *accountHandler) searchAccounts(c *gin.Context) {
	var params dto.SearchAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	resp, err := h.accountService.SearchAccounts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to search accounts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *accountHandler) deactivateBusiness(c *gin.Context) {
	h.deactivate(c, domain.AccountTypeBusiness)
}

func (h *accountHandler) deactivateProperty(c *gin.Context) {
	h.deactivate(c, domain.AccountTypeProperty)
}

// deactivate godoc
// @Summary Deactivate an account
// @Description Marks a business or property Inactive. Admin only.
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Account already inactive"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /businesses/{id} [delete]
func (h *accountHandler) deactivate(c *gin.Context, accountType domain.AccountType) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.accountService.DeactivateAccount(c.Request.Context(), accountType, c.Param("id"), actor); err != nil {
		respondError(c, err, "Failed to deactivate account")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deactivated"})
}

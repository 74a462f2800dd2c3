package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/quickbill305/quickbill_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// zoneHandler handles HTTP requests for zone reference data.
type zoneHandler struct {
	zoneService portssvc.ZoneSvcFacade
}

// newZoneHandler creates a new zoneHandler.
func newZoneHandler(zs portssvc.ZoneSvcFacade) *zoneHandler {
	return &zoneHandler{zoneService: zs}
}

// registerZoneRoutes registers routes related to zones.
func registerZoneRoutes(rg *gin.RouterGroup, zoneService portssvc.ZoneSvcFacade) {
	h := newZoneHandler(zoneService)

	zones := rg.Group("/zones")
	{
		zones.GET("", h.listZones)
		zones.GET("/:id", h.getZone)
		zones.POST("", adminOnly(), h.createZone)
		zones.POST("/:id/subzones", adminOnly(), h.createSubZone)
	}
}

func parseZoneID(c *gin.Context) (int64, bool) {
	zoneID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || zoneID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid zone ID"})
		return 0, false
	}
	return zoneID, true
}

// listZones godoc
// @Summary List zones
// @Description Retrieves all collection zones with their sub-zones.
// @Tags zones
// @Produce json
// @Success 200 {object} dto.ListZonesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /zones [get]
func (h *zoneHandler) listZones(c *gin.Context) {
	resp, err := h.zoneService.ListZones(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list zones")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getZone godoc
// @Summary Get a zone
// @Produce json
// @Param id path int true "Zone ID"
// @Success 200 {object} dto.ZoneResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /zones/{id} [get]
func (h *zoneHandler) getZone(c *gin.Context) {
	zoneID, ok := parseZoneID(c)
	if !ok {
		return
	}
	resp, err := h.zoneService.GetZoneByID(c.Request.Context(), zoneID)
	if err != nil {
		respondError(c, err, "Failed to retrieve zone")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createZone godoc
// @Summary Create a zone
// @Description Adds a collection zone. Admin only.
// @Tags zones
// @Accept json
// @Produce json
// @Param zone body dto.CreateZoneRequest true "Zone details"
// @Success 201 {object} dto.ZoneResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Zone code already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /zones [post]
func (h *zoneHandler) createZone(c *gin.Context) {
	var req dto.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	zone, err := h.zoneService.CreateZone(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create zone")
		return
	}
	c.JSON(http.StatusCreated, dto.ToZoneResponse(*zone, nil))
}

// createSubZone godoc
// @Summary Create a sub-zone
// @Description Adds a sub-zone under an existing zone. Admin only.
// @Tags zones
// @Accept json
// @Produce json
// @Param id path int true "Zone ID"
// @Param subzone body dto.CreateSubZoneRequest true "Sub-zone details"
// @Success 201 {object} dto.SubZoneResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Zone not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /zones/{id}/subzones [post]
func (h *zoneHandler) createSubZone(c *gin.Context) {
	zoneID, ok := parseZoneID(c)
	if !ok {
		return
	}
	var req dto.CreateSubZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, actorOK := middleware.GetActorFromContext(c)
	if !actorOK {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	subZone, err := h.zoneService.CreateSubZone(c.Request.Context(), zoneID, req, actor)
	if err != nil {
		respondError(c, err, "Failed to create sub-zone")
		return
	}
	c.JSON(http.StatusCreated, dto.SubZoneResponse{SubZoneID: subZone.SubZoneID, ZoneID: subZone.ZoneID, Name: subZone.Name})
}

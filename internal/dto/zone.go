package dto

import "github.com/quickbill305/quickbill_backend/internal/core/domain"

// CreateZoneRequest defines the data needed to create a collection zone.
type CreateZoneRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required,alphanum,max=10"`
}

// CreateSubZoneRequest defines the data needed to create a sub-zone.
type CreateSubZoneRequest struct {
	Name string `json:"name" binding:"required"`
}

// SubZoneResponse is a sub-zone as returned by the API.
type SubZoneResponse struct {
	SubZoneID int64  `json:"subZoneID"`
	ZoneID    int64  `json:"zoneID"`
	Name      string `json:"name"`
}

// ZoneResponse is a zone with its sub-zones.
type ZoneResponse struct {
	ZoneID   int64             `json:"zoneID"`
	Name     string            `json:"name"`
	Code     string            `json:"code"`
	SubZones []SubZoneResponse `json:"subZones"`
}

// ToZoneResponse converts a domain.Zone and its sub-zones.
func ToZoneResponse(z domain.Zone, subZones []domain.SubZone) ZoneResponse {
	resp := ZoneResponse{
		ZoneID:   z.ZoneID,
		Name:     z.Name,
		Code:     z.Code,
		SubZones: make([]SubZoneResponse, 0, len(subZones)),
	}
	for _, s := range subZones {
		resp.SubZones = append(resp.SubZones, SubZoneResponse{
			SubZoneID: s.SubZoneID,
			ZoneID:    s.ZoneID,
			Name:      s.Name,
		})
	}
	return resp
}

// ListZonesResponse wraps all zones.
type ListZonesResponse struct {
	Zones []ZoneResponse `json:"zones"`
}

package services

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/dto"
)

// ZoneReaderSvc defines read operations for zone reference data
type ZoneReaderSvc interface {
	// GetZoneByID retrieves one zone with its sub-zones.
	GetZoneByID(ctx context.Context, zoneID int64) (*dto.ZoneResponse, error)

	// ListZones retrieves all zones with their sub-zones.
	ListZones(ctx context.Context) (*dto.ListZonesResponse, error)
}

// ZoneWriterSvc defines write operations for zone reference data
type ZoneWriterSvc interface {
	// CreateZone adds a collection zone. Admin only.
	CreateZone(ctx context.Context, req dto.CreateZoneRequest, actor domain.Actor) (*domain.Zone, error)

	// CreateSubZone adds a sub-zone under an existing zone. Admin only.
	CreateSubZone(ctx context.Context, zoneID int64, req dto.CreateSubZoneRequest, actor domain.Actor) (*domain.SubZone, error)
}

// ZoneSvcFacade combines all zone-related service interfaces
type ZoneSvcFacade interface {
	ZoneReaderSvc
	ZoneWriterSvc
}

package repositories

import (
	"context"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
)

// ZoneReader defines read operations for zone reference data.
type ZoneReader interface {
	// FindZoneByID retrieves a zone by its identifier.
	FindZoneByID(ctx context.Context, zoneID int64) (*domain.Zone, error)

	// FindSubZoneByID retrieves a sub-zone by its identifier.
	FindSubZoneByID(ctx context.Context, subZoneID int64) (*domain.SubZone, error)

	// ListZones retrieves all zones ordered by name.
	ListZones(ctx context.Context) ([]domain.Zone, error)

	// ListSubZones retrieves the sub-zones of one zone ordered by name.
	ListSubZones(ctx context.Context, zoneID int64) ([]domain.SubZone, error)
}

// ZoneWriter defines write operations for zone reference data.
type ZoneWriter interface {
	// SaveZone inserts a new zone and returns it with its generated ID.
	SaveZone(ctx context.Context, zone domain.Zone) (*domain.Zone, error)

	// SaveSubZone inserts a new sub-zone and returns it with its generated ID.
	SaveSubZone(ctx context.Context, subZone domain.SubZone) (*domain.SubZone, error)
}

// ZoneRepositoryFacade combines all zone-related repository interfaces
type ZoneRepositoryFacade interface {
	ZoneReader
	ZoneWriter
}

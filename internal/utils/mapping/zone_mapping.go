package mapping

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/models"
)

// ToDomainZone converts a zones row into the domain entity.
func ToDomainZone(m models.Zone) domain.Zone {
	return domain.Zone{
		ZoneID: m.ZoneID,
		Name:   m.Name,
		Code:   m.Code,
	}
}

// ToDomainSubZone converts a sub_zones row into the domain entity.
func ToDomainSubZone(m models.SubZone) domain.SubZone {
	return domain.SubZone{
		SubZoneID: m.SubZoneID,
		ZoneID:    m.ZoneID,
		Name:      m.Name,
	}
}

package models

// Zone is one row of the zones reference table.
type Zone struct {
	ZoneID int64  `db:"zone_id"`
	Name   string `db:"name"`
	Code   string `db:"code"`
}

// SubZone is one row of the sub_zones reference table.
type SubZone struct {
	SubZoneID int64  `db:"sub_zone_id"`
	ZoneID    int64  `db:"zone_id"`
	Name      string `db:"name"`
}

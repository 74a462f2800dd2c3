package domain

// Zone is a reference lookup row grouping accounts geographically.
// Read-only from the billing workflow's perspective.
type Zone struct {
	ZoneID int64  `json:"zoneID"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// SubZone subdivides a Zone.
type SubZone struct {
	SubZoneID int64  `json:"subZoneID"`
	ZoneID    int64  `json:"zoneID"`
	Name      string `json:"name"`
}

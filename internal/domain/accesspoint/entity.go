package accesspoint

import "time"

// DeviceTypeAlternating marks readers that cannot report CheckIn/CheckOut
// themselves; the event type is inferred by strict alternation instead.
const DeviceTypeAlternating = "alternating"

type AccessPoint struct {
	ID         string
	AccessName string
	Code       string
	Location   *string
	SiteID     *string
	DeviceType *string
	DeviceData *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	SiteName *string
}

// InfersEventType reports whether events from this access point arrive
// without a CheckIn/CheckOut direction.
func (p AccessPoint) InfersEventType() bool {
	return p.DeviceType != nil && *p.DeviceType == DeviceTypeAlternating
}

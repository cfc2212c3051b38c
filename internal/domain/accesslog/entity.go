package accesslog

import "time"

// EventType is the direction of an access event.
type EventType string

const (
	EventCheckIn  EventType = "CheckIn"
	EventCheckOut EventType = "CheckOut"
)

// IsValid reports whether t is one of the two known event types.
func (t EventType) IsValid() bool {
	return t == EventCheckIn || t == EventCheckOut
}

// Opposite flips CheckIn to CheckOut and back. Used when inferring the type
// of events from devices that only report "badge seen".
func (t EventType) Opposite() EventType {
	if t == EventCheckIn {
		return EventCheckOut
	}
	return EventCheckIn
}

// Result records whether the gate actually opened. It is frozen at write
// time from the access point's active flag and only changes through an
// explicit administrative recompute.
type Result string

const (
	ResultSuccess Result = "Success"
	ResultFailure Result = "Failure"
)

// AccessLog is one recorded badge event. Rows are append-only; the employee
// and access point references are nullable so a deleted access point leaves
// orphaned history behind rather than losing it.
type AccessLog struct {
	ID            string
	EmployeeID    *string
	AccessPointID *string
	AccessTime    time.Time
	AccessType    EventType
	AccessResult  Result
	AccessStatus  string
	Note          *string
	CreatedAt     time.Time

	// DTO
	EmployeeName    *string
	EmployeeCode    *string
	AccessPointName *string
}

package accesslog

import "errors"

// Access log domain errors
var (
	ErrNoLogsFound      = errors.New("no access logs found")
	ErrLogNotFound      = errors.New("access log not found")
	ErrMissingEventType = errors.New("access_type is required for this access point")
)

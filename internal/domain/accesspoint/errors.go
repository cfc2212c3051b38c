package accesspoint

import "errors"

// Access point domain errors
var (
	ErrAccessPointNotFound = errors.New("access point not found")
	ErrCodeExists          = errors.New("access point code already exists")
	ErrNameExists          = errors.New("access point name already exists")
)

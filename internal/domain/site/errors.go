package site

import "errors"

// Site domain errors
var (
	ErrSiteNotFound        = errors.New("site not found")
	ErrSiteNameExists      = errors.New("site name already exists")
	ErrSiteHasAccessPoints = errors.New("site still has access points")
)

package site

import "time"

type Site struct {
	ID        string
	SiteName  string
	Address   *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

// Venue represents a physical location containing one or more courts
type Venue struct {
	ID           string
	OwnerID      string
	Name         string
	Description  *string
	Address      string
	City         string
	Neighborhood *string
	Lat          *float64
	Lng          *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sport вид спорта из справочника (футбол, теннис, падел и т.д.)
type Sport struct {
	ID   string
	Slug string
	Name string
}

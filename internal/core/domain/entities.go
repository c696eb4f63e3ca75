package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is the address of a real estate. It is owned by exactly one
// RealEstate row and never shared between them. CityRegion may be empty:
// not every municipality splits its cities into regions.
type Location struct {
	Country      string
	City         string
	CityRegion   string
	Street       string
	StreetNumber string
}

// RealEstate is a physical property an announcement advertises.
type RealEstate struct {
	ID       uuid.UUID
	Area     float64
	Deleted  bool
	Location Location
}

// Author carries the subset of the user profile the search path needs.
type Author struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

// Announcement is a published classified ad. Deleted is a soft flag:
// rows are never physically removed by this service, they only drop out
// of the default search view.
type Announcement struct {
	ID          uuid.UUID
	Price       float64
	Type        string
	PhoneNumber string
	Verified    bool
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Author      Author
	RealEstate  RealEstate
}

// Company is an advertiser profile. It is an independent search target
// with no relationship to announcements or real estates.
type Company struct {
	ID          uuid.UUID
	Name        string
	Address     string
	PhoneNumber string
}

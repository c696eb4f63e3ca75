package domain

import "strings"

// AnnouncementCriteria is the set of optional filters for announcement
// search. Every field is independent; a nil pointer or empty string means
// "no constraint on that dimension", never "match zero/empty".
//
// Text criteria are matched by case-insensitive substring containment,
// numeric ranges by inclusive bounds. AuthorName is matched against the
// author's first name only.
type AnnouncementCriteria struct {
	StartPrice *float64
	EndPrice   *float64
	StartArea  *float64
	EndArea    *float64

	AuthorName  string
	Type        string
	PhoneNumber string

	Country      string
	City         string
	CityRegion   string
	Street       string
	StreetNumber string
}

// Normalize trims text criteria so that whitespace-only input collapses to
// "no constraint". Numeric bounds pass through untouched: a range with
// StartPrice > EndPrice is not an error, it simply matches nothing.
// Callers downstream rely on that, so it must not be "corrected" here.
func (c AnnouncementCriteria) Normalize() AnnouncementCriteria {
	c.AuthorName = strings.TrimSpace(c.AuthorName)
	c.Type = strings.TrimSpace(c.Type)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
	c.Country = strings.TrimSpace(c.Country)
	c.City = strings.TrimSpace(c.City)
	c.CityRegion = strings.TrimSpace(c.CityRegion)
	c.Street = strings.TrimSpace(c.Street)
	c.StreetNumber = strings.TrimSpace(c.StreetNumber)
	return c
}

// IsEmpty reports whether no criterion is set at all. An empty criteria
// set degenerates to "all rows in the current visibility view".
func (c AnnouncementCriteria) IsEmpty() bool {
	return c.StartPrice == nil && c.EndPrice == nil &&
		c.StartArea == nil && c.EndArea == nil &&
		c.AuthorName == "" && c.Type == "" && c.PhoneNumber == "" &&
		c.Country == "" && c.City == "" && c.CityRegion == "" &&
		c.Street == "" && c.StreetNumber == ""
}

// CompanyCriteria filters company search. Same substring semantics as
// announcement text criteria, each field independent.
type CompanyCriteria struct {
	Name        string
	Address     string
	PhoneNumber string
}

func (c CompanyCriteria) Normalize() CompanyCriteria {
	c.Name = strings.TrimSpace(c.Name)
	c.Address = strings.TrimSpace(c.Address)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
	return c
}

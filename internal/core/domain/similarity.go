package domain

import "strings"

// AreaTolerance is the absolute margin (in square meters) within which two
// area values are considered the same property. It absorbs rounding
// differences in user-entered areas (213 vs 215) without pulling in
// genuinely different properties on the same address. The bounds are
// inclusive: a stored area exactly AreaTolerance away still matches.
const AreaTolerance = 5.0

// SimilarityQuery describes a real estate a user is about to create.
// Matching against it lets the announcement flow offer an existing row for
// reuse instead of inserting a near-duplicate.
//
// Unlike search criteria, none of the location fields is optional: all
// five must match a stored row case-insensitively and exactly. An empty
// CityRegion matches only rows whose city region is also empty/NULL.
type SimilarityQuery struct {
	Location Location
	Area     float64
}

func (q SimilarityQuery) Normalize() SimilarityQuery {
	q.Location.Country = strings.TrimSpace(q.Location.Country)
	q.Location.City = strings.TrimSpace(q.Location.City)
	q.Location.CityRegion = strings.TrimSpace(q.Location.CityRegion)
	q.Location.Street = strings.TrimSpace(q.Location.Street)
	q.Location.StreetNumber = strings.TrimSpace(q.Location.StreetNumber)
	return q
}

// AreaWindow returns the inclusive [min, max] interval a stored area must
// fall into to be considered the same property.
func (q SimilarityQuery) AreaWindow() (float64, float64) {
	return q.Area - AreaTolerance, q.Area + AreaTolerance
}

package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest selects one slice of a filtered result set. Page is 0-based.
// SortField is a logical field name; each storage adapter maps it onto a
// whitelisted column and ignores anything it does not know. Ordering is
// always tie-broken by id so that identical requests against an unchanged
// store return identical pages.
type PageRequest struct {
	Page           int
	Size           int
	SortField      string
	SortDescending bool
}

// Clamp brings page and size into their allowed ranges.
func (p PageRequest) Clamp() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		p.Size = DefaultPageSize
	}
	return p
}

func (p PageRequest) Limit() int  { return p.Size }
func (p PageRequest) Offset() int { return p.Page * p.Size }

// AnnouncementPage is one page of announcement search results.
// TotalCount reflects the filtered set, not the whole table.
type AnnouncementPage struct {
	Items      []Announcement
	TotalCount int
	Page       int
	Size       int
}

type CompanyPage struct {
	Items      []Company
	TotalCount int
	Page       int
	Size       int
}

type RealEstatePage struct {
	Items      []RealEstate
	TotalCount int
	Page       int
	Size       int
}

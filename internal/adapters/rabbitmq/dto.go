package rabbitmq

import (
	"time"

	"oglasnik-service/internal/core/domain"

	"github.com/google/uuid"
)

// DTOs mirror the JSON schemas of the incoming events.

type AnnouncementPublishedDTO struct {
	Announcement AnnouncementDTO `json:"announcement"`
}

type AnnouncementDTO struct {
	ID          uuid.UUID     `json:"id"`
	Price       float64       `json:"price"`
	Type        string        `json:"type"`
	PhoneNumber string        `json:"phone_number"`
	Verified    bool          `json:"verified"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`
	Author      AuthorDTO     `json:"author"`
	RealEstate  RealEstateDTO `json:"real_estate"`
}

type AuthorDTO struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type RealEstateDTO struct {
	ID       uuid.UUID   `json:"id"`
	Area     float64     `json:"area"`
	Location LocationDTO `json:"location"`
}

type LocationDTO struct {
	Country      string  `json:"country"`
	City         string  `json:"city"`
	CityRegion   *string `json:"city_region,omitempty"`
	Street       string  `json:"street"`
	StreetNumber string  `json:"street_number"`
}

type AnnouncementRemovedDTO struct {
	AnnouncementID uuid.UUID `json:"announcement_id"`
}

func toDomainAnnouncement(dto AnnouncementPublishedDTO) domain.Announcement {
	a := dto.Announcement

	createdAt := time.Now()
	if a.CreatedAt != nil {
		createdAt = *a.CreatedAt
	}

	cityRegion := ""
	if a.RealEstate.Location.CityRegion != nil {
		cityRegion = *a.RealEstate.Location.CityRegion
	}

	return domain.Announcement{
		ID:          a.ID,
		Price:       a.Price,
		Type:        a.Type,
		PhoneNumber: a.PhoneNumber,
		Verified:    a.Verified,
		Deleted:     false,
		CreatedAt:   createdAt,
		UpdatedAt:   time.Now(),
		Author: domain.Author{
			ID:        a.Author.ID,
			FirstName: a.Author.FirstName,
			LastName:  a.Author.LastName,
		},
		RealEstate: domain.RealEstate{
			ID:   a.RealEstate.ID,
			Area: a.RealEstate.Area,
			Location: domain.Location{
				Country:      a.RealEstate.Location.Country,
				City:         a.RealEstate.Location.City,
				CityRegion:   cityRegion,
				Street:       a.RealEstate.Location.Street,
				StreetNumber: a.RealEstate.Location.StreetNumber,
			},
		},
	}
}

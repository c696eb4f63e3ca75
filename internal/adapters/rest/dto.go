package rest

import (
	"oglasnik-service/internal/core/domain"
)

type LocationResponse struct {
	Country      string `json:"country"`
	City         string `json:"city"`
	CityRegion   string `json:"city_region,omitempty"`
	Street       string `json:"street"`
	StreetNumber string `json:"street_number"`
}

type RealEstateResponse struct {
	ID       string           `json:"id"`
	Area     float64          `json:"area"`
	Location LocationResponse `json:"location"`
}

type AuthorResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AnnouncementResponse struct {
	ID          string             `json:"id"`
	Price       float64            `json:"price"`
	Type        string             `json:"type"`
	PhoneNumber string             `json:"phone_number"`
	Verified    bool               `json:"verified"`
	Author      AuthorResponse     `json:"author"`
	RealEstate  RealEstateResponse `json:"real_estate"`
}

type CompanyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

func toAnnouncementResponse(ann domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          ann.ID.String(),
		Price:       ann.Price,
		Type:        ann.Type,
		PhoneNumber: ann.PhoneNumber,
		Verified:    ann.Verified,
		Author: AuthorResponse{
			FirstName: ann.Author.FirstName,
			LastName:  ann.Author.LastName,
		},
		RealEstate: toRealEstateResponse(ann.RealEstate),
	}
}

func toRealEstateResponse(re domain.RealEstate) RealEstateResponse {
	return RealEstateResponse{
		ID:   re.ID.String(),
		Area: re.Area,
		Location: LocationResponse{
			Country:      re.Location.Country,
			City:         re.Location.City,
			CityRegion:   re.Location.CityRegion,
			Street:       re.Location.Street,
			StreetNumber: re.Location.StreetNumber,
		},
	}
}

func toCompanyResponse(c domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Address:     c.Address,
		PhoneNumber: c.PhoneNumber,
	}
}

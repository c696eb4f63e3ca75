package rabbitmq

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainAnnouncement(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	region := "Vracar"
	dto := AnnouncementPublishedDTO{
		Announcement: AnnouncementDTO{
			ID:          uuid.New(),
			Price:       120000,
			Type:        "apartment",
			PhoneNumber: "+381601234567",
			Verified:    true,
			CreatedAt:   &createdAt,
			Author: AuthorDTO{
				ID:        uuid.New(),
				FirstName: "Ivan",
				LastName:  "Petrovic",
			},
			RealEstate: RealEstateDTO{
				ID:   uuid.New(),
				Area: 72.5,
				Location: LocationDTO{
					Country:      "Serbia",
					City:         "Belgrade",
					CityRegion:   &region,
					Street:       "Njegoseva",
					StreetNumber: "19",
				},
			},
		},
	}

	ann := toDomainAnnouncement(dto)

	assert.Equal(t, dto.Announcement.ID, ann.ID)
	assert.Equal(t, 120000.0, ann.Price)
	assert.Equal(t, "apartment", ann.Type)
	assert.True(t, ann.Verified)
	assert.False(t, ann.Deleted)
	assert.Equal(t, createdAt, ann.CreatedAt)
	assert.Equal(t, "Ivan", ann.Author.FirstName)
	assert.Equal(t, "Vracar", ann.RealEstate.Location.CityRegion)
	assert.Equal(t, 72.5, ann.RealEstate.Area)
}

func TestToDomainAnnouncement_NilCityRegionAndCreatedAt(t *testing.T) {
	dto := AnnouncementPublishedDTO{
		Announcement: AnnouncementDTO{ID: uuid.New()},
	}

	before := time.Now()
	ann := toDomainAnnouncement(dto)

	assert.Empty(t, ann.RealEstate.Location.CityRegion)
	assert.False(t, ann.CreatedAt.Before(before))
}

func TestAnnouncementRemovedDTO_Unmarshal(t *testing.T) {
	var dto AnnouncementRemovedDTO
	require.NoError(t, json.Unmarshal(
		[]byte(`{"announcement_id": "072a5057-4883-45eb-a8a5-7bfcb5057a5c"}`), &dto))

	assert.Equal(t, "072a5057-4883-45eb-a8a5-7bfcb5057a5c", dto.AnnouncementID.String())
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestAnnouncementCriteriaNormalize_TrimsTextFields(t *testing.T) {
	c := AnnouncementCriteria{
		AuthorName:   "  Ivan ",
		Type:         "\tapartment\n",
		PhoneNumber:  " +381 11 ",
		Country:      " Serbia",
		City:         "Belgrade ",
		CityRegion:   "  Vracar  ",
		Street:       " Njegoseva ",
		StreetNumber: " 19a ",
	}

	n := c.Normalize()

	assert.Equal(t, "Ivan", n.AuthorName)
	assert.Equal(t, "apartment", n.Type)
	assert.Equal(t, "+381 11", n.PhoneNumber)
	assert.Equal(t, "Serbia", n.Country)
	assert.Equal(t, "Belgrade", n.City)
	assert.Equal(t, "Vracar", n.CityRegion)
	assert.Equal(t, "Njegoseva", n.Street)
	assert.Equal(t, "19a", n.StreetNumber)
}

func TestAnnouncementCriteriaNormalize_WhitespaceOnlyBecomesNoConstraint(t *testing.T) {
	c := AnnouncementCriteria{City: "   ", AuthorName: "\t\n"}

	n := c.Normalize()

	assert.Empty(t, n.City)
	assert.Empty(t, n.AuthorName)
	assert.True(t, n.IsEmpty())
}

func TestAnnouncementCriteriaNormalize_KeepsNumericBoundsUntouched(t *testing.T) {
	// An inverted range is preserved, not corrected: it matches nothing
	// downstream and that is the contract.
	c := AnnouncementCriteria{
		StartPrice: floatPtr(500),
		EndPrice:   floatPtr(100),
		StartArea:  floatPtr(40),
	}

	n := c.Normalize()

	assert.Equal(t, 500.0, *n.StartPrice)
	assert.Equal(t, 100.0, *n.EndPrice)
	assert.Equal(t, 40.0, *n.StartArea)
	assert.Nil(t, n.EndArea)
}

func TestAnnouncementCriteriaIsEmpty(t *testing.T) {
	assert.True(t, AnnouncementCriteria{}.IsEmpty())
	assert.False(t, AnnouncementCriteria{City: "Novi Sad"}.IsEmpty())
	assert.False(t, AnnouncementCriteria{EndArea: floatPtr(0)}.IsEmpty())
}

func TestCompanyCriteriaNormalize(t *testing.T) {
	c := CompanyCriteria{Name: " Acme ", Address: "\tMain street 1 ", PhoneNumber: " 123 "}

	n := c.Normalize()

	assert.Equal(t, "Acme", n.Name)
	assert.Equal(t, "Main street 1", n.Address)
	assert.Equal(t, "123", n.PhoneNumber)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityQueryAreaWindow(t *testing.T) {
	q := SimilarityQuery{Area: 213}

	min, max := q.AreaWindow()

	assert.Equal(t, 208.0, min)
	assert.Equal(t, 218.0, max)
}

func TestSimilarityQueryAreaWindow_BoundsAreSymmetric(t *testing.T) {
	q := SimilarityQuery{Area: 50}

	min, max := q.AreaWindow()

	assert.Equal(t, q.Area-min, max-q.Area)
	assert.Equal(t, 2*AreaTolerance, max-min)
}

func TestSimilarityQueryNormalize_TrimsAllLocationFields(t *testing.T) {
	q := SimilarityQuery{
		Location: Location{
			Country:      " Serbia ",
			City:         " Belgrade ",
			CityRegion:   "   ",
			Street:       " Knez Mihailova ",
			StreetNumber: " 5 ",
		},
		Area: 72.5,
	}

	n := q.Normalize()

	assert.Equal(t, "Serbia", n.Location.Country)
	assert.Equal(t, "Belgrade", n.Location.City)
	assert.Empty(t, n.Location.CityRegion)
	assert.Equal(t, "Knez Mihailova", n.Location.Street)
	assert.Equal(t, "5", n.Location.StreetNumber)
	assert.Equal(t, 72.5, n.Area)
}

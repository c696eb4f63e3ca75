package postgres

import (
	"strings"
	"testing"

	"oglasnik-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestApplyAnnouncementFilters_EmptyCriteriaKeepsDeletedCondition(t *testing.T) {
	where, args := applyAnnouncementFilters(domain.AnnouncementCriteria{}, false)

	assert.Equal(t, "WHERE a.deleted = false", where)
	assert.Empty(t, args)
}

func TestApplyAnnouncementFilters_DeletedOnlyView(t *testing.T) {
	where, _ := applyAnnouncementFilters(domain.AnnouncementCriteria{}, true)

	assert.Equal(t, "WHERE a.deleted = true", where)
}

func TestApplyAnnouncementFilters_TextCriteriaBecomeILIKE(t *testing.T) {
	criteria := domain.AnnouncementCriteria{
		Type:       "apartment",
		AuthorName: "Ivan",
		City:       "Belgrade",
	}

	where, args := applyAnnouncementFilters(criteria, false)

	assert.Contains(t, where, "a.type ILIKE $1")
	assert.Contains(t, where, "u.first_name ILIKE $2")
	assert.Contains(t, where, "re.city ILIKE $3")
	assert.Equal(t, []interface{}{"%apartment%", "%Ivan%", "%Belgrade%"}, args)
}

func TestApplyAnnouncementFilters_RangesAreInclusive(t *testing.T) {
	criteria := domain.AnnouncementCriteria{
		StartPrice: floatPtr(100),
		EndPrice:   floatPtr(500),
		EndArea:    floatPtr(80),
	}

	where, args := applyAnnouncementFilters(criteria, false)

	assert.Contains(t, where, "a.price >= $1")
	assert.Contains(t, where, "a.price <= $2")
	assert.Contains(t, where, "re.area <= $3")
	assert.Equal(t, []interface{}{100.0, 500.0, 80.0}, args)
}

func TestApplyAnnouncementFilters_InvertedRangeIsKeptAsIs(t *testing.T) {
	// start > end is passed through: the predicate simply matches no rows.
	criteria := domain.AnnouncementCriteria{
		StartPrice: floatPtr(500),
		EndPrice:   floatPtr(100),
	}

	where, args := applyAnnouncementFilters(criteria, false)

	assert.Contains(t, where, "a.price >= $1")
	assert.Contains(t, where, "a.price <= $2")
	assert.Equal(t, []interface{}{500.0, 100.0}, args)
}

func TestApplyAnnouncementFilters_AllCriteriaAreANDed(t *testing.T) {
	criteria := domain.AnnouncementCriteria{
		StartPrice:   floatPtr(100),
		Type:         "house",
		PhoneNumber:  "060",
		AuthorName:   "Mila",
		Country:      "Serbia",
		City:         "Nis",
		CityRegion:   "Palilula",
		Street:       "Obrenoviceva",
		StreetNumber: "10",
	}

	where, args := applyAnnouncementFilters(criteria, false)

	require.True(t, strings.HasPrefix(where, "WHERE a.deleted = false AND "))
	assert.Equal(t, 9, len(args))
	assert.Equal(t, 9, strings.Count(where, " AND "))
}

func TestApplyCompanyFilters(t *testing.T) {
	t.Run("no criteria means no WHERE clause", func(t *testing.T) {
		where, args := applyCompanyFilters(domain.CompanyCriteria{})
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("each criterion is a substring match", func(t *testing.T) {
		where, args := applyCompanyFilters(domain.CompanyCriteria{
			Name:        "Estate",
			Address:     "Main",
			PhoneNumber: "011",
		})

		assert.Equal(t, "WHERE c.name ILIKE $1 AND c.address ILIKE $2 AND c.phone_number ILIKE $3", where)
		assert.Equal(t, []interface{}{"%Estate%", "%Main%", "%011%"}, args)
	})
}

func TestApplySimilarityFilters_AddressEqualityThenAreaWindow(t *testing.T) {
	query := domain.SimilarityQuery{
		Location: domain.Location{
			Country:      "Serbia",
			City:         "Belgrade",
			CityRegion:   "Vracar",
			Street:       "Njegoseva",
			StreetNumber: "19",
		},
		Area: 213,
	}

	where, args := applySimilarityFilters(query)

	require.True(t, strings.HasPrefix(where, "WHERE re.deleted = false AND "))
	assert.Contains(t, where, "lower(re.country) = lower($1)")
	assert.Contains(t, where, "lower(re.city) = lower($2)")
	assert.Contains(t, where, "lower(coalesce(re.city_region, '')) = lower($3)")
	assert.Contains(t, where, "lower(re.street) = lower($4)")
	assert.Contains(t, where, "lower(re.street_number) = lower($5)")
	assert.Contains(t, where, "re.area >= $6")
	assert.Contains(t, where, "re.area <= $7")

	assert.Equal(t, []interface{}{"Serbia", "Belgrade", "Vracar", "Njegoseva", "19", 208.0, 218.0}, args)
}

func TestApplySimilarityFilters_EmptyCityRegionMatchesOnlyEmpty(t *testing.T) {
	// The empty string is a real value here, not "no constraint": it pairs
	// with the coalesce so NULL regions match only queries without a region.
	query := domain.SimilarityQuery{
		Location: domain.Location{
			Country:      "Serbia",
			City:         "Belgrade",
			Street:       "Njegoseva",
			StreetNumber: "19",
		},
		Area: 50,
	}

	where, args := applySimilarityFilters(query)

	assert.Contains(t, where, "lower(coalesce(re.city_region, '')) = lower($3)")
	assert.Equal(t, "", args[2])
}

func TestQueryBuilder_ArgNumberingIsSequential(t *testing.T) {
	qb := newQueryBuilder("x = 1")
	qb.addContains("a", "one")
	qb.addContains("b", "") // skipped, must not consume a placeholder
	qb.addEqualsFold("c", "two")

	where, args := qb.build()

	assert.Equal(t, "WHERE x = 1 AND a ILIKE $1 AND lower(c) = lower($2)", where)
	assert.Equal(t, []interface{}{"%one%", "two"}, args)
}

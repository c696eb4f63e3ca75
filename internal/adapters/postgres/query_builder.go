package postgres

import (
	"fmt"
	"oglasnik-service/internal/core/domain"
	"strings"
)

// queryBuilder accumulates a conjunction of SQL conditions with positional
// arguments. Criteria are enumerated explicitly per entity; there is no
// generic field/operator mechanism.
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder(baseConditions ...string) *queryBuilder {
	return &queryBuilder{
		argID:      1,
		conditions: baseConditions,
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// addContains adds a case-insensitive substring condition. Empty values
// mean "no constraint" and add nothing.
func (qb *queryBuilder) addContains(fieldName string, value string) {
	if value == "" {
		return
	}
	qb.addCondition("%s ILIKE $%d", fieldName, "%"+value+"%")
}

// addEqualsFold adds an exact, case-insensitive equality condition.
func (qb *queryBuilder) addEqualsFold(fieldName string, value string) {
	qb.addCondition("lower(%s) = lower($%d)", fieldName, value)
}

// addFloatRange adds inclusive bounds for whichever ends are present.
// Both bounds are added even when min > max: such a range matches nothing,
// which is the documented outcome, not a validation failure.
func (qb *queryBuilder) addFloatRange(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	if len(qb.conditions) == 0 {
		return "", qb.args
	}
	return "WHERE " + strings.Join(qb.conditions, " AND "), qb.args
}

// applyAnnouncementFilters translates normalized announcement criteria
// into a WHERE clause over the announcements/users/real_estates join.
// Every supplied criterion is ANDed in; the soft-delete condition is
// always present and pinned by the requested view.
func applyAnnouncementFilters(criteria domain.AnnouncementCriteria, deletedOnly bool) (string, []interface{}) {
	deletedCondition := "a.deleted = false"
	if deletedOnly {
		deletedCondition = "a.deleted = true"
	}
	qb := newQueryBuilder(deletedCondition)

	qb.addFloatRange("a.price", criteria.StartPrice, criteria.EndPrice)
	qb.addFloatRange("re.area", criteria.StartArea, criteria.EndArea)

	qb.addContains("a.type", criteria.Type)
	qb.addContains("a.phone_number", criteria.PhoneNumber)

	// Author matching is by first name only.
	qb.addContains("u.first_name", criteria.AuthorName)

	// Location criteria reach through the real estate row. A NULL
	// city_region never matches a supplied criterion: ILIKE on NULL is
	// not true, so such rows drop out.
	qb.addContains("re.country", criteria.Country)
	qb.addContains("re.city", criteria.City)
	qb.addContains("re.city_region", criteria.CityRegion)
	qb.addContains("re.street", criteria.Street)
	qb.addContains("re.street_number", criteria.StreetNumber)

	return qb.build()
}

// applyCompanyFilters translates company criteria. Companies carry no
// soft-delete flag, so with no criteria the clause is empty.
func applyCompanyFilters(criteria domain.CompanyCriteria) (string, []interface{}) {
	qb := newQueryBuilder()

	qb.addContains("c.name", criteria.Name)
	qb.addContains("c.address", criteria.Address)
	qb.addContains("c.phone_number", criteria.PhoneNumber)

	return qb.build()
}

// applySimilarityFilters builds the duplicate-candidate predicate: all
// five address fields equal case-insensitively and exactly, plus an
// inclusive area window around the candidate's area. Address conditions
// come first; they are the selective part of the conjunction. A NULL
// city_region is folded to the empty string so that "no region" matches
// only "no region".
func applySimilarityFilters(query domain.SimilarityQuery) (string, []interface{}) {
	qb := newQueryBuilder("re.deleted = false")

	qb.addEqualsFold("re.country", query.Location.Country)
	qb.addEqualsFold("re.city", query.Location.City)
	qb.addEqualsFold("coalesce(re.city_region, '')", query.Location.CityRegion)
	qb.addEqualsFold("re.street", query.Location.Street)
	qb.addEqualsFold("re.street_number", query.Location.StreetNumber)

	minArea, maxArea := query.AreaWindow()
	qb.addFloatRange("re.area", &minArea, &maxArea)

	return qb.build()
}

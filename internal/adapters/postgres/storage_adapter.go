package postgres

import (
	"fmt"

	"oglasnik-service/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorageAdapter implements the announcement, company and real
// estate storage ports on top of a pgx connection pool.
type PostgresStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPostgresStorageAdapter(pool *pgxpool.Pool) (*PostgresStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresStorageAdapter{pool: pool}, nil
}

// Sortable columns per entity. Unknown sort fields fall back to the id
// tiebreak so a caller can never inject arbitrary SQL through the sort
// parameter.
var (
	announcementSortColumns = map[string]string{
		"price": "a.price",
		"id":    "a.id",
	}
	companySortColumns = map[string]string{
		"name": "c.name",
		"id":   "c.id",
	}
	realEstateSortColumns = map[string]string{
		"area": "re.area",
		"id":   "re.id",
	}
)

// orderClause builds a deterministic ORDER BY: the requested column (when
// whitelisted) followed by the id tiebreak, so identical requests always
// return identical ordering.
func orderClause(whitelist map[string]string, page domain.PageRequest, tiebreak string) string {
	column, ok := whitelist[page.SortField]
	if !ok {
		return fmt.Sprintf("ORDER BY %s ASC", tiebreak)
	}
	direction := "ASC"
	if page.SortDescending {
		direction = "DESC"
	}
	if column == tiebreak {
		return fmt.Sprintf("ORDER BY %s %s", column, direction)
	}
	return fmt.Sprintf("ORDER BY %s %s, %s ASC", column, direction, tiebreak)
}

package postgres

import (
	"context"
	"fmt"
	"strings"

	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"
)

// FindSimilar returns stored, non-deleted real estates matching the
// query's address exactly (case-insensitively) with an area inside the
// tolerance window. The address conditions are evaluated before the area
// window; on an indexed address they narrow the set to a handful of rows
// before any numeric comparison happens.
func (a *PostgresStorageAdapter) FindSimilar(ctx context.Context, query domain.SimilarityQuery, page domain.PageRequest) (*domain.RealEstatePage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "FindSimilar",
		"area":      query.Area,
	})

	whereClause, args := applySimilarityFilters(query)

	countQuery := "SELECT COUNT(*) FROM real_estates re " + whereClause
	var totalCount int64
	if err := a.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count similar real estates", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count similar real estates: %w", err)
	}

	if totalCount == 0 {
		return &domain.RealEstatePage{
			Items:      []domain.RealEstate{},
			TotalCount: 0,
			Page:       page.Page,
			Size:       page.Size,
		}, nil
	}

	var dataQuery strings.Builder
	dataQuery.WriteString(`
		SELECT re.id, re.area, re.deleted, re.country, re.city, re.city_region, re.street, re.street_number
		FROM real_estates re `)
	dataQuery.WriteString(whereClause)
	dataQuery.WriteString(" ")
	dataQuery.WriteString(orderClause(realEstateSortColumns, page, "re.id"))

	pagedArgs := append(args, page.Limit(), page.Offset())
	pagedQuery := fmt.Sprintf("%s LIMIT $%d OFFSET $%d", dataQuery.String(), len(args)+1, len(args)+2)

	rows, err := a.pool.Query(ctx, pagedQuery, pagedArgs...)
	if err != nil {
		repoLogger.Error("Failed to find similar real estates", err, port.Fields{"query": pagedQuery})
		return nil, fmt.Errorf("failed to find similar real estates: %w", err)
	}
	defer rows.Close()

	items := make([]domain.RealEstate, 0, page.Limit())
	for rows.Next() {
		var re domain.RealEstate
		var cityRegion *string
		if err := rows.Scan(
			&re.ID, &re.Area, &re.Deleted,
			&re.Location.Country, &re.Location.City, &cityRegion,
			&re.Location.Street, &re.Location.StreetNumber,
		); err != nil {
			return nil, fmt.Errorf("failed to scan real estate: %w", err)
		}
		if cityRegion != nil {
			re.Location.CityRegion = *cityRegion
		}
		items = append(items, re)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("real estate rows iteration failed: %w", err)
	}

	repoLogger.Debug("Similarity candidates loaded", port.Fields{
		"total_count": totalCount,
		"count":       len(items),
	})

	return &domain.RealEstatePage{
		Items:      items,
		TotalCount: int(totalCount),
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}

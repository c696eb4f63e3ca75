package postgres

import (
	"context"
	"fmt"
	"strings"

	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"
)

// SearchWithCriteria returns one page of announcements matching the
// criteria conjunction, together with the filtered total count.
func (a *PostgresStorageAdapter) SearchWithCriteria(ctx context.Context, criteria domain.AnnouncementCriteria, deletedOnly bool, page domain.PageRequest) (*domain.AnnouncementPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "SearchWithCriteria",
		"page":      page.Page,
		"size":      page.Size,
	})

	whereClause, args := applyAnnouncementFilters(criteria, deletedOnly)

	const fromClause = `
		FROM announcements a
		JOIN users u ON u.id = a.author_id
		JOIN real_estates re ON re.id = a.real_estate_id `

	countQuery := "SELECT COUNT(*) " + fromClause + whereClause
	var totalCount int64
	if err := a.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count announcements", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count announcements: %w", err)
	}

	if totalCount == 0 {
		return &domain.AnnouncementPage{
			Items:      []domain.Announcement{},
			TotalCount: 0,
			Page:       page.Page,
			Size:       page.Size,
		}, nil
	}

	var dataQuery strings.Builder
	dataQuery.WriteString(`
		SELECT a.id, a.price, a.type, a.phone_number, a.verified, a.deleted, a.created_at, a.updated_at,
		       u.id, u.first_name, u.last_name,
		       re.id, re.area, re.deleted, re.country, re.city, re.city_region, re.street, re.street_number `)
	dataQuery.WriteString(fromClause)
	dataQuery.WriteString(whereClause)
	dataQuery.WriteString(" ")
	dataQuery.WriteString(orderClause(announcementSortColumns, page, "a.id"))

	pagedArgs := append(args, page.Limit(), page.Offset())
	pagedQuery := fmt.Sprintf("%s LIMIT $%d OFFSET $%d", dataQuery.String(), len(args)+1, len(args)+2)

	rows, err := a.pool.Query(ctx, pagedQuery, pagedArgs...)
	if err != nil {
		repoLogger.Error("Failed to search announcements", err, port.Fields{"query": pagedQuery})
		return nil, fmt.Errorf("failed to search announcements: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Announcement, 0, page.Limit())
	for rows.Next() {
		var ann domain.Announcement
		var cityRegion *string
		if err := rows.Scan(
			&ann.ID, &ann.Price, &ann.Type, &ann.PhoneNumber, &ann.Verified, &ann.Deleted,
			&ann.CreatedAt, &ann.UpdatedAt,
			&ann.Author.ID, &ann.Author.FirstName, &ann.Author.LastName,
			&ann.RealEstate.ID, &ann.RealEstate.Area, &ann.RealEstate.Deleted,
			&ann.RealEstate.Location.Country, &ann.RealEstate.Location.City, &cityRegion,
			&ann.RealEstate.Location.Street, &ann.RealEstate.Location.StreetNumber,
		); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		if cityRegion != nil {
			ann.RealEstate.Location.CityRegion = *cityRegion
		}
		items = append(items, ann)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("announcement rows iteration failed: %w", err)
	}

	repoLogger.Debug("Announcements page loaded", port.Fields{
		"total_count": totalCount,
		"count":       len(items),
	})

	return &domain.AnnouncementPage{
		Items:      items,
		TotalCount: int(totalCount),
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}

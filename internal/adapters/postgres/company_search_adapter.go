package postgres

import (
	"context"
	"fmt"
	"strings"

	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CompanyStorageAdapter implements the company search port. Companies
// live in their own table with no relationship to announcements, so they
// get their own adapter over the shared pool.
type CompanyStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewCompanyStorageAdapter(pool *pgxpool.Pool) (*CompanyStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &CompanyStorageAdapter{pool: pool}, nil
}

// SearchWithCriteria mirrors announcement search with the same substring
// semantics, independently for name, address and phone number.
func (a *CompanyStorageAdapter) SearchWithCriteria(ctx context.Context, criteria domain.CompanyCriteria, page domain.PageRequest) (*domain.CompanyPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "CompanyStorageAdapter",
		"method":    "SearchWithCriteria",
		"page":      page.Page,
		"size":      page.Size,
	})

	whereClause, args := applyCompanyFilters(criteria)

	countQuery := "SELECT COUNT(*) FROM companies c " + whereClause
	var totalCount int64
	if err := a.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count companies", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}

	if totalCount == 0 {
		return &domain.CompanyPage{
			Items:      []domain.Company{},
			TotalCount: 0,
			Page:       page.Page,
			Size:       page.Size,
		}, nil
	}

	var dataQuery strings.Builder
	dataQuery.WriteString("SELECT c.id, c.name, c.address, c.phone_number FROM companies c ")
	dataQuery.WriteString(whereClause)
	dataQuery.WriteString(" ")
	dataQuery.WriteString(orderClause(companySortColumns, page, "c.id"))

	pagedArgs := append(args, page.Limit(), page.Offset())
	pagedQuery := fmt.Sprintf("%s LIMIT $%d OFFSET $%d", dataQuery.String(), len(args)+1, len(args)+2)

	rows, err := a.pool.Query(ctx, pagedQuery, pagedArgs...)
	if err != nil {
		repoLogger.Error("Failed to search companies", err, port.Fields{"query": pagedQuery})
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Company, 0, page.Limit())
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.Address, &company.PhoneNumber); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		items = append(items, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("company rows iteration failed: %w", err)
	}

	return &domain.CompanyPage{
		Items:      items,
		TotalCount: int(totalCount),
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}

package usecase

import (
	"context"
	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"
)

// SearchCompaniesUseCase filters the advertiser directory. Companies are
// an independent search target: no join to announcements, no soft-delete
// flag, no default sort beyond the deterministic id tiebreak.
type SearchCompaniesUseCase struct {
	storage port.CompanyStoragePort
}

func NewSearchCompaniesUseCase(storage port.CompanyStoragePort) *SearchCompaniesUseCase {
	return &SearchCompaniesUseCase{storage: storage}
}

func (uc *SearchCompaniesUseCase) Execute(ctx context.Context, criteria domain.CompanyCriteria, page domain.PageRequest) (*domain.CompanyPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchCompanies",
		"page":     page.Page,
		"size":     page.Size,
	})

	criteria = criteria.Normalize()
	page = page.Clamp()

	result, err := uc.storage.SearchWithCriteria(ctx, criteria, page)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Items),
	})

	return result, nil
}

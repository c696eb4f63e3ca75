package port

import (
	"context"
	"oglasnik-service/internal/core/domain"
)

// CompanyStoragePort is the read-only persistence boundary for company
// search.
type CompanyStoragePort interface {
	SearchWithCriteria(ctx context.Context, criteria domain.CompanyCriteria, page domain.PageRequest) (*domain.CompanyPage, error)
}

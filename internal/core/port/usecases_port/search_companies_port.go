package usecases_port

import (
	"context"
	"oglasnik-service/internal/core/domain"
)

type SearchCompaniesUseCase interface {
	Execute(ctx context.Context, criteria domain.CompanyCriteria, page domain.PageRequest) (*domain.CompanyPage, error)
}

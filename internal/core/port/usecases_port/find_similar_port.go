package usecases_port

import (
	"context"
	"oglasnik-service/internal/core/domain"
)

type FindSimilarRealEstatesUseCase interface {
	Execute(ctx context.Context, query domain.SimilarityQuery, page domain.PageRequest) (*domain.RealEstatePage, error)
}

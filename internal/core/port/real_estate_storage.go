package port

import (
	"context"
	"oglasnik-service/internal/core/domain"
)

// RealEstateStoragePort exposes duplicate-candidate lookup over stored
// real estates.
type RealEstateStoragePort interface {
	// FindSimilar returns the non-deleted real estates whose address
	// matches the query exactly (case-insensitively) and whose area lies
	// within the tolerance window around the query's area.
	FindSimilar(ctx context.Context, query domain.SimilarityQuery, page domain.PageRequest) (*domain.RealEstatePage, error)
}

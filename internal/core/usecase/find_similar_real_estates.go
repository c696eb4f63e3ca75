package usecase

import (
	"context"
	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"
)

// FindSimilarRealEstatesUseCase offers duplicate candidates during
// announcement creation: stored, non-deleted real estates on the exact
// same address whose area is within the tolerance window. The decision to
// reuse one of them (or to create a new row anyway) stays with the user;
// this use case never merges or deletes anything.
type FindSimilarRealEstatesUseCase struct {
	storage port.RealEstateStoragePort
}

func NewFindSimilarRealEstatesUseCase(storage port.RealEstateStoragePort) *FindSimilarRealEstatesUseCase {
	return &FindSimilarRealEstatesUseCase{storage: storage}
}

func (uc *FindSimilarRealEstatesUseCase) Execute(ctx context.Context, query domain.SimilarityQuery, page domain.PageRequest) (*domain.RealEstatePage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindSimilarRealEstates",
		"area":     query.Area,
	})

	query = query.Normalize()
	page = page.Clamp()

	result, err := uc.storage.FindSimilar(ctx, query, page)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"candidates_found": result.TotalCount,
	})

	return result, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"oglasnik-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSimilarRealEstates_NormalizesQuery(t *testing.T) {
	storage := &fakeRealEstateStorage{page: &domain.RealEstatePage{}}
	uc := NewFindSimilarRealEstatesUseCase(storage)

	_, err := uc.Execute(context.Background(),
		domain.SimilarityQuery{
			Location: domain.Location{City: " Belgrade ", Country: "Serbia", Street: "Njegoseva", StreetNumber: "19"},
			Area:     213,
		},
		domain.PageRequest{Page: -5},
	)

	require.NoError(t, err)
	assert.Equal(t, "Belgrade", storage.gotQuery.Location.City)
	assert.Equal(t, 213.0, storage.gotQuery.Area)
	assert.Equal(t, 0, storage.gotPage.Page)
}

func TestFindSimilarRealEstates_PropagatesStorageError(t *testing.T) {
	wantErr := errors.New("broken pipe")
	uc := NewFindSimilarRealEstatesUseCase(&fakeRealEstateStorage{err: wantErr})

	got, err := uc.Execute(context.Background(), domain.SimilarityQuery{}, domain.PageRequest{})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, wantErr)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"oglasnik-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCompanies_NormalizesAndDelegates(t *testing.T) {
	storage := &fakeCompanyStorage{page: &domain.CompanyPage{TotalCount: 3}}
	uc := NewSearchCompaniesUseCase(storage)

	got, err := uc.Execute(context.Background(),
		domain.CompanyCriteria{Name: "  Acme  "},
		domain.PageRequest{Page: 1, Size: 250},
	)

	require.NoError(t, err)
	assert.Equal(t, "Acme", storage.gotCriteria.Name)
	assert.Equal(t, domain.DefaultPageSize, storage.gotPage.Size)
	assert.Equal(t, 3, got.TotalCount)
}

func TestSearchCompanies_PropagatesStorageError(t *testing.T) {
	wantErr := errors.New("timeout")
	uc := NewSearchCompaniesUseCase(&fakeCompanyStorage{err: wantErr})

	got, err := uc.Execute(context.Background(), domain.CompanyCriteria{}, domain.PageRequest{})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, wantErr)
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oglasnik-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFindSimilarUC struct {
	gotQuery domain.SimilarityQuery
	page     *domain.RealEstatePage
	err      error
}

func (f *fakeFindSimilarUC) Execute(_ context.Context, query domain.SimilarityQuery, page domain.PageRequest) (*domain.RealEstatePage, error) {
	f.gotQuery = query
	return f.page, f.err
}

func TestFindSimilar_BindsLocationAndArea(t *testing.T) {
	uc := &fakeFindSimilarUC{page: &domain.RealEstatePage{}}
	handler := NewSimilarityHandler(uc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/real-estates/similar?country=Serbia&city=Belgrade&cityRegion=Vracar&street=Njegoseva&streetNumber=19&area=213", nil)
	rec := httptest.NewRecorder()

	handler.FindSimilar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Serbia", uc.gotQuery.Location.Country)
	assert.Equal(t, "Belgrade", uc.gotQuery.Location.City)
	assert.Equal(t, "Vracar", uc.gotQuery.Location.CityRegion)
	assert.Equal(t, "Njegoseva", uc.gotQuery.Location.Street)
	assert.Equal(t, "19", uc.gotQuery.Location.StreetNumber)
	assert.Equal(t, 213.0, uc.gotQuery.Area)
}

func TestFindSimilar_MissingAreaIsBadRequest(t *testing.T) {
	uc := &fakeFindSimilarUC{page: &domain.RealEstatePage{}}
	handler := NewSimilarityHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/real-estates/similar?city=Belgrade", nil)
	rec := httptest.NewRecorder()

	handler.FindSimilar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "area")
}

func TestFindSimilar_MalformedAreaIsBadRequest(t *testing.T) {
	handler := NewSimilarityHandler(&fakeFindSimilarUC{page: &domain.RealEstatePage{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/real-estates/similar?area=big", nil)
	rec := httptest.NewRecorder()

	handler.FindSimilar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindSimilar_RespondsWithCandidates(t *testing.T) {
	uc := &fakeFindSimilarUC{page: &domain.RealEstatePage{
		Items: []domain.RealEstate{{
			ID:   uuid.New(),
			Area: 215,
			Location: domain.Location{
				Country: "Serbia", City: "Belgrade", Street: "Njegoseva", StreetNumber: "19",
			},
		}},
		TotalCount: 1,
		Size:       20,
	}}
	handler := NewSimilarityHandler(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/real-estates/similar?area=213", nil)
	rec := httptest.NewRecorder()

	handler.FindSimilar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Total-Count"))

	var items []RealEstateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 215.0, items[0].Area)
	assert.Equal(t, "Belgrade", items[0].Location.City)
}

func TestFindSimilar_UseCaseFailureIs500(t *testing.T) {
	handler := NewSimilarityHandler(&fakeFindSimilarUC{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/real-estates/similar?area=50", nil)
	rec := httptest.NewRecorder()

	handler.FindSimilar(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package usecase

import (
	"context"

	"oglasnik-service/internal/core/domain"

	"github.com/google/uuid"
)

// Hand-written port fakes. They record what the use case passed in and
// return whatever the test configured.

type fakeAnnouncementStorage struct {
	gotCriteria    domain.AnnouncementCriteria
	gotDeletedOnly bool
	gotPage        domain.PageRequest
	gotSaved       []domain.Announcement
	gotRemovedIDs  []uuid.UUID

	page *domain.AnnouncementPage
	err  error
}

func (f *fakeAnnouncementStorage) SearchWithCriteria(_ context.Context, criteria domain.AnnouncementCriteria, deletedOnly bool, page domain.PageRequest) (*domain.AnnouncementPage, error) {
	f.gotCriteria = criteria
	f.gotDeletedOnly = deletedOnly
	f.gotPage = page
	return f.page, f.err
}

func (f *fakeAnnouncementStorage) Save(_ context.Context, ann domain.Announcement) error {
	f.gotSaved = append(f.gotSaved, ann)
	return f.err
}

func (f *fakeAnnouncementStorage) MarkRemoved(_ context.Context, announcementID uuid.UUID) error {
	f.gotRemovedIDs = append(f.gotRemovedIDs, announcementID)
	return f.err
}

type fakeCompanyStorage struct {
	gotCriteria domain.CompanyCriteria
	gotPage     domain.PageRequest

	page *domain.CompanyPage
	err  error
}

func (f *fakeCompanyStorage) SearchWithCriteria(_ context.Context, criteria domain.CompanyCriteria, page domain.PageRequest) (*domain.CompanyPage, error) {
	f.gotCriteria = criteria
	f.gotPage = page
	return f.page, f.err
}

type fakeRealEstateStorage struct {
	gotQuery domain.SimilarityQuery
	gotPage  domain.PageRequest

	page *domain.RealEstatePage
	err  error
}

func (f *fakeRealEstateStorage) FindSimilar(_ context.Context, query domain.SimilarityQuery, page domain.PageRequest) (*domain.RealEstatePage, error) {
	f.gotQuery = query
	f.gotPage = page
	return f.page, f.err
}

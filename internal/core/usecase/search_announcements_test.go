package usecase

import (
	"context"
	"errors"
	"testing"

	"oglasnik-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAnnouncements_NormalizesCriteriaAndClampsPage(t *testing.T) {
	storage := &fakeAnnouncementStorage{page: &domain.AnnouncementPage{}}
	uc := NewSearchAnnouncementsUseCase(storage)

	_, err := uc.Execute(context.Background(),
		domain.AnnouncementCriteria{City: "  Belgrade  "},
		domain.PageRequest{Page: -1, Size: 0},
	)

	require.NoError(t, err)
	assert.Equal(t, "Belgrade", storage.gotCriteria.City)
	assert.Equal(t, 0, storage.gotPage.Page)
	assert.Equal(t, domain.DefaultPageSize, storage.gotPage.Size)
	assert.False(t, storage.gotDeletedOnly)
}

func TestSearchAnnouncements_ReturnsStoragePageVerbatim(t *testing.T) {
	want := &domain.AnnouncementPage{
		Items:      []domain.Announcement{{Type: "apartment"}},
		TotalCount: 42,
		Page:       2,
		Size:       10,
	}
	storage := &fakeAnnouncementStorage{page: want}
	uc := NewSearchAnnouncementsUseCase(storage)

	got, err := uc.Execute(context.Background(), domain.AnnouncementCriteria{}, domain.PageRequest{Page: 2, Size: 10})

	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestSearchAnnouncements_PropagatesStorageError(t *testing.T) {
	wantErr := errors.New("connection refused")
	storage := &fakeAnnouncementStorage{err: wantErr}
	uc := NewSearchAnnouncementsUseCase(storage)

	got, err := uc.Execute(context.Background(), domain.AnnouncementCriteria{}, domain.PageRequest{})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, wantErr)
}

func TestSearchDeletedAnnouncements_QueriesDeletedView(t *testing.T) {
	storage := &fakeAnnouncementStorage{page: &domain.AnnouncementPage{}}
	uc := NewSearchDeletedAnnouncementsUseCase(storage)

	_, err := uc.Execute(context.Background(), domain.AnnouncementCriteria{Type: "house"}, domain.PageRequest{Size: 10})

	require.NoError(t, err)
	assert.True(t, storage.gotDeletedOnly)
	assert.Equal(t, "house", storage.gotCriteria.Type)
}

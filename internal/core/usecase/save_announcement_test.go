package usecase

import (
	"context"
	"errors"
	"testing"

	"oglasnik-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAnnouncement_DelegatesToStorage(t *testing.T) {
	storage := &fakeAnnouncementStorage{}
	uc := NewSaveAnnouncementUseCase(storage)

	ann := domain.Announcement{ID: uuid.New(), Type: "apartment"}
	err := uc.Execute(context.Background(), ann)

	require.NoError(t, err)
	require.Len(t, storage.gotSaved, 1)
	assert.Equal(t, ann.ID, storage.gotSaved[0].ID)
}

func TestSaveAnnouncement_PropagatesStorageError(t *testing.T) {
	wantErr := errors.New("constraint violation")
	uc := NewSaveAnnouncementUseCase(&fakeAnnouncementStorage{err: wantErr})

	err := uc.Execute(context.Background(), domain.Announcement{ID: uuid.New()})

	assert.ErrorIs(t, err, wantErr)
}

func TestRemoveAnnouncement_MarksByID(t *testing.T) {
	storage := &fakeAnnouncementStorage{}
	uc := NewRemoveAnnouncementUseCase(storage)

	id := uuid.New()
	err := uc.Execute(context.Background(), id)

	require.NoError(t, err)
	require.Len(t, storage.gotRemovedIDs, 1)
	assert.Equal(t, id, storage.gotRemovedIDs[0])
}

func TestRemoveAnnouncement_PropagatesStorageError(t *testing.T) {
	wantErr := errors.New("no rows affected")
	uc := NewRemoveAnnouncementUseCase(&fakeAnnouncementStorage{err: wantErr})

	err := uc.Execute(context.Background(), uuid.New())

	assert.ErrorIs(t, err, wantErr)
}

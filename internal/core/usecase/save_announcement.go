package usecase

import (
	"context"
	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"
)

// SaveAnnouncementUseCase persists announcements arriving from the
// lifecycle event stream. This is the only write path into the search
// store besides soft-delete toggling.
type SaveAnnouncementUseCase struct {
	storage port.AnnouncementStoragePort
}

func NewSaveAnnouncementUseCase(storage port.AnnouncementStoragePort) *SaveAnnouncementUseCase {
	return &SaveAnnouncementUseCase{storage: storage}
}

func (uc *SaveAnnouncementUseCase) Execute(ctx context.Context, ann domain.Announcement) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "SaveAnnouncement",
		"announcement_id": ann.ID.String(),
	})

	if err := uc.storage.Save(ctx, ann); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Announcement saved", nil)
	return nil
}

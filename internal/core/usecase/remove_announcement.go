package usecase

import (
	"context"
	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/port"

	"github.com/google/uuid"
)

// RemoveAnnouncementUseCase applies a soft delete signalled by a lifecycle
// event. The row is flagged, never physically removed, so it stays
// reachable through the deleted-only view.
type RemoveAnnouncementUseCase struct {
	storage port.AnnouncementStoragePort
}

func NewRemoveAnnouncementUseCase(storage port.AnnouncementStoragePort) *RemoveAnnouncementUseCase {
	return &RemoveAnnouncementUseCase{storage: storage}
}

func (uc *RemoveAnnouncementUseCase) Execute(ctx context.Context, announcementID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "RemoveAnnouncement",
		"announcement_id": announcementID.String(),
	})

	if err := uc.storage.MarkRemoved(ctx, announcementID); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	ucLogger.Info("Announcement marked as removed", nil)
	return nil
}

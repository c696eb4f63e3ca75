package usecase

import (
	"context"
	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"
)

// SearchDeletedAnnouncementsUseCase is the moderation view: identical
// criteria semantics, but only soft-deleted rows are considered. It
// performs no authorization itself; the caller is expected to have been
// authorized upstream.
type SearchDeletedAnnouncementsUseCase struct {
	storage port.AnnouncementStoragePort
}

func NewSearchDeletedAnnouncementsUseCase(storage port.AnnouncementStoragePort) *SearchDeletedAnnouncementsUseCase {
	return &SearchDeletedAnnouncementsUseCase{storage: storage}
}

func (uc *SearchDeletedAnnouncementsUseCase) Execute(ctx context.Context, criteria domain.AnnouncementCriteria, page domain.PageRequest) (*domain.AnnouncementPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchDeletedAnnouncements",
		"page":     page.Page,
		"size":     page.Size,
	})

	criteria = criteria.Normalize()
	page = page.Clamp()

	result, err := uc.storage.SearchWithCriteria(ctx, criteria, true, page)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Items),
	})

	return result, nil
}

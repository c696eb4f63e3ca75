package usecase

import (
	"context"
	"oglasnik-service/internal/contextkeys"
	"oglasnik-service/internal/core/domain"
	"oglasnik-service/internal/core/port"
)

// SearchAnnouncementsUseCase filters live announcements by an arbitrary
// combination of optional criteria. It normalizes the criteria, delegates
// matching to the storage port and returns its page verbatim. Read-only
// and idempotent: repeating a call against an unchanged store yields the
// same page in the same order.
type SearchAnnouncementsUseCase struct {
	storage port.AnnouncementStoragePort
}

func NewSearchAnnouncementsUseCase(storage port.AnnouncementStoragePort) *SearchAnnouncementsUseCase {
	return &SearchAnnouncementsUseCase{storage: storage}
}

func (uc *SearchAnnouncementsUseCase) Execute(ctx context.Context, criteria domain.AnnouncementCriteria, page domain.PageRequest) (*domain.AnnouncementPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchAnnouncements",
		"page":     page.Page,
		"size":     page.Size,
	})

	criteria = criteria.Normalize()
	page = page.Clamp()

	ucLogger.Debug("Use case started", port.Fields{"empty_criteria": criteria.IsEmpty()})

	result, err := uc.storage.SearchWithCriteria(ctx, criteria, false, page)
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

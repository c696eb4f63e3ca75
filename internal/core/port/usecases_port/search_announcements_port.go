package usecases_port

import (
	"context"
	"oglasnik-service/internal/core/domain"
)

type SearchAnnouncementsUseCase interface {
	Execute(ctx context.Context, criteria domain.AnnouncementCriteria, page domain.PageRequest) (*domain.AnnouncementPage, error)
}

// SearchDeletedAnnouncementsUseCase serves the admin-only view over
// soft-deleted rows. Authorization happens before this interface is
// reached.
type SearchDeletedAnnouncementsUseCase interface {
	Execute(ctx context.Context, criteria domain.AnnouncementCriteria, page domain.PageRequest) (*domain.AnnouncementPage, error)
}

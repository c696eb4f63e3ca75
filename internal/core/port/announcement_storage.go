package port

import (
	"context"
	"oglasnik-service/internal/core/domain"

	"github.com/google/uuid"
)

// AnnouncementStoragePort is the persistence boundary for announcements.
// Search is read-only; Save and MarkRemoved exist for the event-driven
// ingestion path and are the only mutations this service performs.
type AnnouncementStoragePort interface {
	// SearchWithCriteria returns one page of announcements matching all
	// supplied criteria. With deletedOnly false only live rows
	// (deleted = false) are considered; with deletedOnly true only
	// soft-deleted rows. Authorization for the latter view is the
	// caller's concern.
	SearchWithCriteria(ctx context.Context, criteria domain.AnnouncementCriteria, deletedOnly bool, page domain.PageRequest) (*domain.AnnouncementPage, error)

	// Save upserts an announcement together with its author and real
	// estate.
	Save(ctx context.Context, ann domain.Announcement) error

	// MarkRemoved sets the soft-delete flag on an announcement. The row
	// stays in place and remains reachable through the deleted-only view.
	MarkRemoved(ctx context.Context, announcementID uuid.UUID) error
}

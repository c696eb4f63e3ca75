package usecases_port

import (
	"context"
	"oglasnik-service/internal/core/domain"

	"github.com/google/uuid"
)

type SaveAnnouncementUseCase interface {
	Execute(ctx context.Context, ann domain.Announcement) error
}

type RemoveAnnouncementUseCase interface {
	Execute(ctx context.Context, announcementID uuid.UUID) error
}

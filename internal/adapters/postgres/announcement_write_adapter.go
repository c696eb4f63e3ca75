package postgres

import (
	"context"
	"fmt"

	"oglasnik-service/internal/core/domain"

	"github.com/google/uuid"
)

// Save upserts an announcement with its author and real estate in one
// transaction. The event stream may replay, so every statement is an
// upsert keyed by id.
func (a *PostgresStorageAdapter) Save(ctx context.Context, ann domain.Announcement) error {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const sqlUser = `
		INSERT INTO users (id, first_name, last_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name;
	`
	if _, err := tx.Exec(ctx, sqlUser, ann.Author.ID, ann.Author.FirstName, ann.Author.LastName); err != nil {
		return fmt.Errorf("failed to upsert author: %w", err)
	}

	// NULL for an absent city region keeps "no region" distinct from an
	// empty label in the similarity comparison.
	var cityRegion *string
	if ann.RealEstate.Location.CityRegion != "" {
		cityRegion = &ann.RealEstate.Location.CityRegion
	}

	const sqlRealEstate = `
		INSERT INTO real_estates (id, area, deleted, country, city, city_region, street, street_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			area = EXCLUDED.area,
			deleted = EXCLUDED.deleted,
			country = EXCLUDED.country,
			city = EXCLUDED.city,
			city_region = EXCLUDED.city_region,
			street = EXCLUDED.street,
			street_number = EXCLUDED.street_number;
	`
	if _, err := tx.Exec(ctx, sqlRealEstate,
		ann.RealEstate.ID, ann.RealEstate.Area, ann.RealEstate.Deleted,
		ann.RealEstate.Location.Country, ann.RealEstate.Location.City, cityRegion,
		ann.RealEstate.Location.Street, ann.RealEstate.Location.StreetNumber,
	); err != nil {
		return fmt.Errorf("failed to upsert real estate: %w", err)
	}

	const sqlAnnouncement = `
		INSERT INTO announcements (id, price, type, phone_number, verified, deleted, created_at, updated_at, author_id, real_estate_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			price = EXCLUDED.price,
			type = EXCLUDED.type,
			phone_number = EXCLUDED.phone_number,
			verified = EXCLUDED.verified,
			deleted = EXCLUDED.deleted,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := tx.Exec(ctx, sqlAnnouncement,
		ann.ID, ann.Price, ann.Type, ann.PhoneNumber, ann.Verified, ann.Deleted,
		ann.CreatedAt, ann.UpdatedAt, ann.Author.ID, ann.RealEstate.ID,
	); err != nil {
		return fmt.Errorf("failed to upsert announcement: %w", err)
	}

	return tx.Commit(ctx)
}

// MarkRemoved flips the soft-delete flag. The real estate row stays live:
// it can still be offered for reuse by the similarity matcher.
func (a *PostgresStorageAdapter) MarkRemoved(ctx context.Context, announcementID uuid.UUID) error {
	tag, err := a.pool.Exec(ctx,
		"UPDATE announcements SET deleted = true, updated_at = now() WHERE id = $1",
		announcementID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark announcement as removed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("announcement %s not found", announcementID)
	}
	return nil
}

// Package repository contains data access logic for shows.  A show
// links one artist to one venue; both must exist when it is created.
package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/model"
)

const showListingSelect = `SELECT s.id, s.artist_id, a.name AS artist_name, a.image_link AS artist_image_link,
	s.venue_id, v.name AS venue_name, v.image_link AS venue_image_link, s.start_time
	FROM shows s
	JOIN artists a ON a.id = s.artist_id
	JOIN venues v  ON v.id = s.venue_id`

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sqlx.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sqlx.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show.  The artist and venue are looked up inside
// the same transaction; a missing one fails with ErrInvalidReference
// even on stores that do not enforce foreign keys.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	ts := now()
	return withTx(ctx, r.db, "show.create", func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "artists", s.ArtistID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: artist %d", ErrInvalidReference, s.ArtistID)
		}
		if ok, err = exists(ctx, tx, "venues", s.VenueID); err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: venue %d", ErrInvalidReference, s.VenueID)
		}
		const q = `INSERT INTO shows (artist_id, venue_id, start_time, created_at) VALUES (?, ?, ?, ?)`
		start := s.StartTime.UTC()
		id, err := insertID(ctx, tx, q, s.ArtistID, s.VenueID, start, ts)
		if err != nil {
			return err
		}
		s.ID, s.StartTime, s.CreatedAt = id, start, ts
		return nil
	})
}

// ListAll returns every show with artist and venue names, earliest first.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
	return r.list(ctx, "show.list", showListingSelect+" ORDER BY s.start_time, s.id")
}

// ListByVenue returns the shows hosted by one venue.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error) {
	return r.list(ctx, "show.list_by_venue", showListingSelect+" WHERE s.venue_id = ? ORDER BY s.start_time, s.id", venueID)
}

// ListByArtist returns the shows played by one artist.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error) {
	return r.list(ctx, "show.list_by_artist", showListingSelect+" WHERE s.artist_id = ? ORDER BY s.start_time, s.id", artistID)
}

func (r *ShowRepo) list(ctx context.Context, op, query string, args ...any) ([]model.ShowListing, error) {
	var out []model.ShowListing
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(query), args...); err != nil {
		return nil, classify(op, err)
	}
	for i := range out {
		out[i].StartTime = out[i].StartTime.UTC()
	}
	return out, nil
}

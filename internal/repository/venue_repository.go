// Package repository contains data access logic separated from HTTP
// handlers.  This file implements CRUD and search for venues.  A venue
// owns its shows and its genre rows; deleting a venue removes both in
// the same transaction.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, website_link, image_link,
	facebook_link, seeking_talent, seeking_description, created_at, updated_at`

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sqlx.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sqlx.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue and its genres in one transaction.  On
// success the venue's ID and timestamps are populated.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	ts := now()
	return withTx(ctx, r.db, "venue.create", func(tx *sqlx.Tx) error {
		const q = `INSERT INTO venues (name, city, state, address, phone, website_link, image_link,
			facebook_link, seeking_talent, seeking_description, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		id, err := insertID(ctx, tx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.WebsiteLink,
			v.ImageLink, v.FacebookLink, v.SeekingTalent, v.SeekingDescription, ts, ts)
		if err != nil {
			return err
		}
		if err := venueGenres.replace(ctx, tx, id, v.Genres); err != nil {
			return err
		}
		v.ID, v.CreatedAt, v.UpdatedAt = id, ts, ts
		return nil
	})
}

// GetByID fetches a venue with its genres.  It returns ErrVenueNotFound
// if no row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	v, err := getVenue(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			return nil, err
		}
		return nil, classify("venue.get", err)
	}
	if v.Genres, err = venueGenres.load(ctx, r.db, id); err != nil {
		return nil, classify("venue.get", err)
	}
	return v, nil
}

func getVenue(ctx context.Context, q sqlx.ExtContext, id uint64) (*model.Venue, error) {
	var v model.Venue
	if err := sqlx.GetContext(ctx, q, &v, q.Rebind("SELECT "+venueColumns+" FROM venues WHERE id = ?"), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	normalizeVenue(&v)
	return &v, nil
}

// ListAll returns every venue ordered by id.  Genres are not loaded.
func (r *VenueRepo) ListAll(ctx context.Context) ([]model.Venue, error) {
	var out []model.Venue
	if err := r.db.SelectContext(ctx, &out, "SELECT "+venueColumns+" FROM venues ORDER BY id"); err != nil {
		return nil, classify("venue.list", err)
	}
	for i := range out {
		normalizeVenue(&out[i])
	}
	return out, nil
}

// Update overwrites every editable column of an existing venue and
// replaces its genres.  Fields left empty by the caller become empty in
// the store.  Returns ErrVenueNotFound (wrapped) when the id is absent.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	ts := now()
	return withTx(ctx, r.db, "venue.update", func(tx *sqlx.Tx) error {
		current, err := getVenue(ctx, tx, v.ID)
		if err != nil {
			return err
		}
		const q = `UPDATE venues SET name = ?, city = ?, state = ?, address = ?, phone = ?,
			website_link = ?, image_link = ?, facebook_link = ?, seeking_talent = ?,
			seeking_description = ?, updated_at = ?
			WHERE id = ?`
		if _, err := tx.ExecContext(ctx, tx.Rebind(q), v.Name, v.City, v.State, v.Address, v.Phone,
			v.WebsiteLink, v.ImageLink, v.FacebookLink, v.SeekingTalent, v.SeekingDescription, ts, v.ID); err != nil {
			return err
		}
		if err := venueGenres.replace(ctx, tx, v.ID, v.Genres); err != nil {
			return err
		}
		v.CreatedAt, v.UpdatedAt = current.CreatedAt, ts
		return nil
	})
}

// Delete removes a venue together with its shows and genres and returns
// the deleted record.  The foreign keys cascade as well; the explicit
// deletes keep the behavior identical on stores that do not enforce them.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (*model.Venue, error) {
	var deleted *model.Venue
	err := withTx(ctx, r.db, "venue.delete", func(tx *sqlx.Tx) error {
		v, err := getVenue(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM shows WHERE venue_id = ?"), id); err != nil {
			return err
		}
		if err := venueGenres.deleteAll(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM venues WHERE id = ?"), id); err != nil {
			return err
		}
		deleted = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func normalizeVenue(v *model.Venue) {
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
}

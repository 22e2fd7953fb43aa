package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/model"
)

const artistColumns = `id, name, city, state, phone, image_link, facebook_link, website_link,
	seeking_venue, seeking_description, created_at, updated_at`

// ArtistRepo manages persistence for artists.
type ArtistRepo struct {
	db *sqlx.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sqlx.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and its genres in one transaction.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	ts := now()
	return withTx(ctx, r.db, "artist.create", func(tx *sqlx.Tx) error {
		const q = `INSERT INTO artists (name, city, state, phone, image_link, facebook_link,
			website_link, seeking_venue, seeking_description, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		id, err := insertID(ctx, tx, q, a.Name, a.City, a.State, a.Phone, a.ImageLink, a.FacebookLink,
			a.WebsiteLink, a.SeekingVenue, a.SeekingDescription, ts, ts)
		if err != nil {
			return err
		}
		if err := artistGenres.replace(ctx, tx, id, a.Genres); err != nil {
			return err
		}
		a.ID, a.CreatedAt, a.UpdatedAt = id, ts, ts
		return nil
	})
}

// GetByID retrieves an artist with its genres.  It returns
// ErrArtistNotFound if there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	a, err := getArtist(ctx, r.db, id)
	if err != nil {
		if errors.Is(err, ErrArtistNotFound) {
			return nil, err
		}
		return nil, classify("artist.get", err)
	}
	if a.Genres, err = artistGenres.load(ctx, r.db, id); err != nil {
		return nil, classify("artist.get", err)
	}
	return a, nil
}

func getArtist(ctx context.Context, q sqlx.ExtContext, id uint64) (*model.Artist, error) {
	var a model.Artist
	if err := sqlx.GetContext(ctx, q, &a, q.Rebind("SELECT "+artistColumns+" FROM artists WHERE id = ?"), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	normalizeArtist(&a)
	return &a, nil
}

// ListAll returns all artists ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]model.Artist, error) {
	var out []model.Artist
	if err := r.db.SelectContext(ctx, &out, "SELECT "+artistColumns+" FROM artists ORDER BY id"); err != nil {
		return nil, classify("artist.list", err)
	}
	for i := range out {
		normalizeArtist(&out[i])
	}
	return out, nil
}

// Update overwrites every editable column of an existing artist and
// replaces its genres.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	ts := now()
	return withTx(ctx, r.db, "artist.update", func(tx *sqlx.Tx) error {
		current, err := getArtist(ctx, tx, a.ID)
		if err != nil {
			return err
		}
		const q = `UPDATE artists SET name = ?, city = ?, state = ?, phone = ?, image_link = ?,
			facebook_link = ?, website_link = ?, seeking_venue = ?, seeking_description = ?, updated_at = ?
			WHERE id = ?`
		if _, err := tx.ExecContext(ctx, tx.Rebind(q), a.Name, a.City, a.State, a.Phone, a.ImageLink,
			a.FacebookLink, a.WebsiteLink, a.SeekingVenue, a.SeekingDescription, ts, a.ID); err != nil {
			return err
		}
		if err := artistGenres.replace(ctx, tx, a.ID, a.Genres); err != nil {
			return err
		}
		a.CreatedAt, a.UpdatedAt = current.CreatedAt, ts
		return nil
	})
}

// Delete removes an artist, its shows and its genres.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) (*model.Artist, error) {
	var deleted *model.Artist
	err := withTx(ctx, r.db, "artist.delete", func(tx *sqlx.Tx) error {
		a, err := getArtist(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM shows WHERE artist_id = ?"), id); err != nil {
			return err
		}
		if err := artistGenres.deleteAll(ctx, tx, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM artists WHERE id = ?"), id); err != nil {
			return err
		}
		deleted = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func normalizeArtist(a *model.Artist) {
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
}

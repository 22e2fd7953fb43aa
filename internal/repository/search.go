package repository

import (
	"context"

	"github.com/iliyamo/fyyur/internal/model"
)

// SearchVenues returns venues whose name, city or state contains term,
// ignoring case.  An empty term matches every venue.
func (r *VenueRepo) SearchVenues(ctx context.Context, term string) ([]model.Venue, error) {
	const q = `SELECT ` + venueColumns + ` FROM venues
		WHERE LOWER(city) LIKE ? ESCAPE '!'
		   OR LOWER(state) LIKE ? ESCAPE '!'
		   OR LOWER(name) LIKE ? ESCAPE '!'
		ORDER BY id`
	p := likePattern(term)
	var out []model.Venue
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(q), p, p, p); err != nil {
		return nil, classify("venue.search", err)
	}
	for i := range out {
		normalizeVenue(&out[i])
	}
	return out, nil
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (r *ArtistRepo) SearchArtists(ctx context.Context, term string) ([]model.Artist, error) {
	const q = `SELECT ` + artistColumns + ` FROM artists
		WHERE LOWER(name) LIKE ? ESCAPE '!'
		ORDER BY id`
	var out []model.Artist
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(q), likePattern(term)); err != nil {
		return nil, classify("artist.search", err)
	}
	for i := range out {
		normalizeArtist(&out[i])
	}
	return out, nil
}

package model

import "time"

// Show is a scheduled event linking one artist to one venue at a
// start time.  Both foreign keys are required.
//
// Fields:
//	ID        – primary key identifier.
//	ArtistID  – artist performing the show.
//	VenueID   – venue hosting the show.
//	StartTime – when the show begins (UTC).
//	CreatedAt – creation timestamp.
type Show struct {
	ID        uint64    `db:"id" json:"id"`                                     // shows.id
	ArtistID  uint64    `db:"artist_id" json:"artist_id" validate:"required"`   // shows.artist_id
	VenueID   uint64    `db:"venue_id" json:"venue_id" validate:"required"`     // shows.venue_id
	StartTime time.Time `db:"start_time" json:"start_time" validate:"required"` // shows.start_time
	CreatedAt time.Time `db:"created_at" json:"-"`                              // shows.created_at
}

// ShowListing is a show joined with the names needed to display it on
// venue, artist and show list pages.
type ShowListing struct {
	ID              uint64    `db:"id"`
	ArtistID        uint64    `db:"artist_id"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
	VenueID         uint64    `db:"venue_id"`
	VenueName       string    `db:"venue_name"`
	VenueImageLink  string    `db:"venue_image_link"`
	StartTime       time.Time `db:"start_time"`
}

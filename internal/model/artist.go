package model

import "time"

// Artist represents a performer who plays shows.  Like Venue, the
// genre list lives in its own table (`artist_genres`).
type Artist struct {
	ID                 uint64    `db:"id" json:"id"`                                                 // artists.id
	Name               string    `db:"name" json:"name"`                                             // artists.name
	City               string    `db:"city" json:"city"`                                             // artists.city
	State              string    `db:"state" json:"state"`                                           // artists.state
	Phone              string    `db:"phone" json:"phone" validate:"phone"`                          // artists.phone
	Genres             []string  `db:"-" json:"genres"`                                              // artist_genres.genre ordered by position
	ImageLink          string    `db:"image_link" json:"image_link" validate:"omitempty,link"`       // artists.image_link
	FacebookLink       string    `db:"facebook_link" json:"facebook_link" validate:"omitempty,link"` // artists.facebook_link
	WebsiteLink        string    `db:"website_link" json:"website_link" validate:"omitempty,link"`   // artists.website_link
	SeekingVenue       bool      `db:"seeking_venue" json:"seeking_venue"`                           // artists.seeking_venue
	SeekingDescription string    `db:"seeking_description" json:"seeking_description"`               // artists.seeking_description
	CreatedAt          time.Time `db:"created_at" json:"-"`                                          // artists.created_at
	UpdatedAt          time.Time `db:"updated_at" json:"-"`                                          // artists.updated_at
}

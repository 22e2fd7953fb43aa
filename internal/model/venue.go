package model

import "time"

// Venue represents a place that hosts shows.  It corresponds to a row
// in the `venues` table; Genres are kept in `venue_genres` and loaded
// by the repository when a single venue is read.
//
// Fields:
//	ID                 – primary key identifier.
//	Name               – display name of the venue.
//	City, State        – location used to group venues into areas.
//	Address, Phone     – contact details.
//	WebsiteLink        – public website.
//	ImageLink          – picture shown on the venue page.
//	FacebookLink       – facebook page.
//	Genres             – ordered list of genres played at the venue.
//	SeekingTalent      – whether the venue is looking for artists.
//	SeekingDescription – free text shown when SeekingTalent is set.
type Venue struct {
	ID                 uint64    `db:"id" json:"id"`                                                 // venues.id
	Name               string    `db:"name" json:"name"`                                             // venues.name
	City               string    `db:"city" json:"city"`                                             // venues.city
	State              string    `db:"state" json:"state"`                                           // venues.state
	Address            string    `db:"address" json:"address"`                                       // venues.address
	Phone              string    `db:"phone" json:"phone" validate:"phone"`                          // venues.phone
	WebsiteLink        string    `db:"website_link" json:"website_link" validate:"omitempty,link"`   // venues.website_link
	ImageLink          string    `db:"image_link" json:"image_link" validate:"omitempty,link"`       // venues.image_link
	FacebookLink       string    `db:"facebook_link" json:"facebook_link" validate:"omitempty,link"` // venues.facebook_link
	Genres             []string  `db:"-" json:"genres"`                                              // venue_genres.genre ordered by position
	SeekingTalent      bool      `db:"seeking_talent" json:"seeking_talent"`                         // venues.seeking_talent
	SeekingDescription string    `db:"seeking_description" json:"seeking_description"`               // venues.seeking_description
	CreatedAt          time.Time `db:"created_at" json:"-"`                                          // venues.created_at
	UpdatedAt          time.Time `db:"updated_at" json:"-"`                                          // venues.updated_at
}

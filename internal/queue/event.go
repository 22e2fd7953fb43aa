// Package queue publishes listing events to the message broker.  Other
// services (newsletters, search indexers) consume them; this module
// only produces.
package queue

import "time"

// Event kinds, used as the "kind" field of every message.
const (
	VenueListed   = "venue.listed"
	VenueUpdated  = "venue.updated"
	VenueDeleted  = "venue.deleted"
	ArtistListed  = "artist.listed"
	ArtistUpdated = "artist.updated"
	ArtistDeleted = "artist.deleted"
	ShowListed    = "show.listed"
)

// ListingEvent is published after a venue, artist or show was committed.
// It carries enough for consumers to react without reading the store.
type ListingEvent struct {
	Kind       string     `json:"kind"`
	ID         uint64     `json:"id"`
	Name       string     `json:"name,omitempty"`
	City       string     `json:"city,omitempty"`
	State      string     `json:"state,omitempty"`
	Genres     []string   `json:"genres,omitempty"`
	ArtistID   uint64     `json:"artist_id,omitempty"`
	VenueID    uint64     `json:"venue_id,omitempty"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Package view reshapes records into the structures rendered by the
// templates and returned as JSON.  Everything here is pure: callers pass
// the records and the reference time, nothing is read from the store or
// the clock.
package view

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iliyamo/fyyur/internal/model"
)

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

// FormatDateTime renders t in the "full" or "medium" (default) style.
func FormatDateTime(t time.Time, format string) string {
	if format == "full" {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}

// ShowSummary is one show as listed on venue, artist and show pages.
type ShowSummary struct {
	ID              uint64    `json:"id"`
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
	Label           string    `json:"-"` // FormatDateTime(StartTime, "full")
	Relative        string    `json:"-"` // "3 days from now"
}

func summarize(s model.ShowListing, now time.Time) ShowSummary {
	return ShowSummary{
		ID:              s.ID,
		VenueID:         s.VenueID,
		VenueName:       s.VenueName,
		VenueImageLink:  s.VenueImageLink,
		ArtistID:        s.ArtistID,
		ArtistName:      s.ArtistName,
		ArtistImageLink: s.ArtistImageLink,
		StartTime:       s.StartTime,
		Label:           FormatDateTime(s.StartTime, "full"),
		Relative:        humanize.RelTime(s.StartTime, now, "ago", "from now"),
	}
}

// upcoming reports whether a show starting at t is still ahead of now.
// A show starting exactly at now is already past.
func upcoming(t, now time.Time) bool {
	return t.After(now)
}

// PartitionShows splits shows into past (start <= now) and upcoming
// (start > now), keeping input order in both.  Both slices are non-nil.
func PartitionShows(shows []model.ShowListing, now time.Time) (past, next []ShowSummary) {
	past, next = []ShowSummary{}, []ShowSummary{}
	for _, s := range shows {
		if upcoming(s.StartTime, now) {
			next = append(next, summarize(s, now))
		} else {
			past = append(past, summarize(s, now))
		}
	}
	return past, next
}

// NewShowRows converts the listing of every show for the shows page.
func NewShowRows(shows []model.ShowListing, now time.Time) []ShowSummary {
	out := make([]ShowSummary, 0, len(shows))
	for _, s := range shows {
		out = append(out, summarize(s, now))
	}
	return out
}

// VenueDetail is a venue with its shows split around the request time.
type VenueDetail struct {
	model.Venue
	PastShows          []ShowSummary `json:"past_shows"`
	UpcomingShows      []ShowSummary `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

// NewVenueDetail builds the detail view of v.  A nil venue yields nil.
func NewVenueDetail(v *model.Venue, shows []model.ShowListing, now time.Time) *VenueDetail {
	if v == nil {
		return nil
	}
	d := &VenueDetail{Venue: *v}
	if d.Genres == nil {
		d.Genres = []string{}
	}
	d.PastShows, d.UpcomingShows = PartitionShows(shows, now)
	d.PastShowsCount, d.UpcomingShowsCount = len(d.PastShows), len(d.UpcomingShows)
	return d
}

// ArtistDetail is an artist with its shows split around the request time.
type ArtistDetail struct {
	model.Artist
	PastShows          []ShowSummary `json:"past_shows"`
	UpcomingShows      []ShowSummary `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

// NewArtistDetail builds the detail view of a.  A nil artist yields nil.
func NewArtistDetail(a *model.Artist, shows []model.ShowListing, now time.Time) *ArtistDetail {
	if a == nil {
		return nil
	}
	d := &ArtistDetail{Artist: *a}
	if d.Genres == nil {
		d.Genres = []string{}
	}
	d.PastShows, d.UpcomingShows = PartitionShows(shows, now)
	d.PastShowsCount, d.UpcomingShowsCount = len(d.PastShows), len(d.UpcomingShows)
	return d
}

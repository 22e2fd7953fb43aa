package form

import (
	"strconv"

	"github.com/iliyamo/fyyur/internal/model"
)

// VenueFields is the field table of the venue form.
var VenueFields = []Field[model.Venue]{
	text("name", func(v *model.Venue) *string { return &v.Name }),
	text("city", func(v *model.Venue) *string { return &v.City }),
	text("state", func(v *model.Venue) *string { return &v.State }),
	text("address", func(v *model.Venue) *string { return &v.Address }),
	text("phone", func(v *model.Venue) *string { return &v.Phone }),
	text("image_link", func(v *model.Venue) *string { return &v.ImageLink }),
	list("genres", func(v *model.Venue) *[]string { return &v.Genres }),
	text("facebook_link", func(v *model.Venue) *string { return &v.FacebookLink }),
	text("website_link", func(v *model.Venue) *string { return &v.WebsiteLink }),
	checkbox("seeking_talent", func(v *model.Venue) *bool { return &v.SeekingTalent }),
	text("seeking_description", func(v *model.Venue) *string { return &v.SeekingDescription }),
}

// ArtistFields is the field table of the artist form.
var ArtistFields = []Field[model.Artist]{
	text("name", func(a *model.Artist) *string { return &a.Name }),
	text("city", func(a *model.Artist) *string { return &a.City }),
	text("state", func(a *model.Artist) *string { return &a.State }),
	text("phone", func(a *model.Artist) *string { return &a.Phone }),
	list("genres", func(a *model.Artist) *[]string { return &a.Genres }),
	text("image_link", func(a *model.Artist) *string { return &a.ImageLink }),
	text("facebook_link", func(a *model.Artist) *string { return &a.FacebookLink }),
	text("website_link", func(a *model.Artist) *string { return &a.WebsiteLink }),
	checkbox("seeking_venue", func(a *model.Artist) *bool { return &a.SeekingVenue }),
	text("seeking_description", func(a *model.Artist) *string { return &a.SeekingDescription }),
}

// ShowFields is the field table of the show form.
var ShowFields = []Field[model.Show]{
	id("artist_id", func(s *model.Show) *uint64 { return &s.ArtistID }),
	id("venue_id", func(s *model.Show) *uint64 { return &s.VenueID }),
	{
		Name: "start_time",
		Get: func(s *model.Show) []string {
			if s.StartTime.IsZero() {
				return nil
			}
			return []string{s.StartTime.UTC().Format(LocalLayout)}
		},
		Set: func(s *model.Show, vs []string) (err error) {
			s.StartTime, err = ParseStartTime(first(vs))
			return err
		},
	},
}

// id fields hold a record id; an empty value leaves zero, which the
// validator then rejects.
func id[T any](name string, ptr func(*T) *uint64) Field[T] {
	return Field[T]{
		Name: name,
		Get: func(r *T) []string {
			if *ptr(r) == 0 {
				return nil
			}
			return []string{strconv.FormatUint(*ptr(r), 10)}
		},
		Set: func(r *T, vs []string) error {
			*ptr(r) = 0
			s := first(vs)
			if s == "" {
				return nil
			}
			n, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return ErrInvalidID
			}
			*ptr(r) = n
			return nil
		},
	}
}

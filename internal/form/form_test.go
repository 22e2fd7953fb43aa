package form

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/franela/goblin"

	"github.com/iliyamo/fyyur/internal/model"
)

func Test_Form(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Decode", func() {
		g.It("maps every venue field by name", func() {
			values := url.Values{
				"name":           {"The Musical Hop"},
				"city":           {"San Francisco"},
				"state":          {"CA"},
				"genres":         {"Rock", "Jazz"},
				"seeking_talent": {"y"},
				"website_link":   {"https://www.themusicalhop.com"},
			}
			var v model.Venue
			g.Assert(Decode(values, VenueFields, &v) == nil).Equal(true)
			g.Assert(v.Name).Equal("The Musical Hop")
			g.Assert(v.City).Equal("San Francisco")
			g.Assert(v.Genres).Equal([]string{"Rock", "Jazz"})
			g.Assert(v.SeekingTalent).Equal(true)
			g.Assert(v.WebsiteLink).Equal("https://www.themusicalhop.com")
		})

		g.It("overwrites fields that were not submitted", func() {
			v := model.Venue{Name: "Old", Phone: "123-123-1234", Genres: []string{"Folk"}, SeekingTalent: true, SeekingDescription: "yes"}
			g.Assert(Decode(url.Values{"name": {"New"}}, VenueFields, &v) == nil).Equal(true)
			g.Assert(v.Name).Equal("New")
			g.Assert(v.Phone).Equal("")
			g.Assert(len(v.Genres)).Equal(0)
			g.Assert(v.SeekingTalent).Equal(false)
			g.Assert(v.SeekingDescription).Equal("")
		})

		g.It("splits a legacy comma separated genre value", func() {
			var a model.Artist
			g.Assert(Decode(url.Values{"genres": {"Rock, Jazz,"}}, ArtistFields, &a) == nil).Equal(true)
			g.Assert(a.Genres).Equal([]string{"Rock", "Jazz"})
		})

		g.It("only treats explicit values as checked", func() {
			g.Assert(Checked("y")).Equal(true)
			g.Assert(Checked("on")).Equal(true)
			g.Assert(Checked("")).Equal(false)
			g.Assert(Checked("n")).Equal(false)
		})

		g.It("parses show ids and start time", func() {
			var s model.Show
			values := url.Values{"artist_id": {"4"}, "venue_id": {"1"}, "start_time": {"2019-05-21T21:30"}}
			g.Assert(Decode(values, ShowFields, &s) == nil).Equal(true)
			g.Assert(s.ArtistID).Equal(uint64(4))
			g.Assert(s.VenueID).Equal(uint64(1))
			g.Assert(s.StartTime.Equal(time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC))).Equal(true)
		})

		g.It("reports every unparsable field", func() {
			var s model.Show
			err := Decode(url.Values{"artist_id": {"x"}, "venue_id": {"1"}, "start_time": {"soon"}}, ShowFields, &s)
			g.Assert(errors.Is(err, ErrInvalidID)).Equal(true)
			g.Assert(errors.Is(err, ErrInvalidTime)).Equal(true)
		})
	})

	g.Describe("Encode", func() {
		g.It("pre-fills an edit form from a record", func() {
			v := model.Venue{Name: "Hop", Genres: []string{"Rock", "Jazz"}, SeekingTalent: true}
			values := Encode(&v, VenueFields)
			g.Assert(values.Get("name")).Equal("Hop")
			g.Assert(values["genres"]).Equal([]string{"Rock", "Jazz"})
			g.Assert(values.Get("seeking_talent")).Equal("y")

			var back model.Venue
			g.Assert(Decode(values, VenueFields, &back) == nil).Equal(true)
			g.Assert(back.Name).Equal("Hop")
			g.Assert(back.Genres).Equal([]string{"Rock", "Jazz"})
			g.Assert(back.SeekingTalent).Equal(true)
		})
	})

	g.Describe("ParseStartTime", func() {
		g.It("accepts RFC 3339 and converts to UTC", func() {
			got, err := ParseStartTime("2035-04-01T20:00:00+02:00")
			g.Assert(err == nil).Equal(true)
			g.Assert(got.Equal(time.Date(2035, 4, 1, 18, 0, 0, 0, time.UTC))).Equal(true)
			g.Assert(got.Location()).Equal(time.UTC)
		})

		g.It("accepts space separated values", func() {
			got, err := ParseStartTime("2019-06-15 23:00:00")
			g.Assert(err == nil).Equal(true)
			g.Assert(got.Equal(time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC))).Equal(true)
		})

		g.It("returns zero for an empty value", func() {
			got, err := ParseStartTime("  ")
			g.Assert(err == nil).Equal(true)
			g.Assert(got.IsZero()).Equal(true)
		})
	})

	g.Describe("Validator", func() {
		cv := NewValidator()

		g.It("accepts an empty venue", func() {
			g.Assert(cv.Validate(&model.Venue{}) == nil).Equal(true)
		})

		g.It("rejects malformed links and phones", func() {
			err := cv.Validate(&model.Venue{WebsiteLink: "not a url", Phone: "call me"})
			msgs := Messages(err)
			g.Assert(len(msgs)).Equal(2)
			g.Assert(msgs[0]).Equal("phone may only contain digits, spaces, + ( ) . - and an extension")
			g.Assert(msgs[1]).Equal("website_link must be a valid URL")
		})

		g.It("accepts host-only links and phone extensions", func() {
			v := model.Venue{
				FacebookLink: "www.facebook.com/fillmore",
				WebsiteLink:  "https://thefillmore.com",
				Phone:        "415-555-1234 ext 2",
			}
			g.Assert(cv.Validate(&v) == nil).Equal(true)
			g.Assert(cv.Validate(&model.Artist{Phone: "(415) 555-1234 x12"}) == nil).Equal(true)
		})

		g.It("requires show references and a start time", func() {
			msgs := Messages(cv.Validate(&model.Show{}))
			g.Assert(msgs).Equal([]string{"artist_id is required", "venue_id is required", "start_time is required"})
		})
	})

	g.Describe("genres", func() {
		g.It("joins for display and splits back", func() {
			g.Assert(JoinGenres([]string{"Rock", "Jazz"})).Equal("Rock, Jazz")
			g.Assert(SplitGenres("Rock, Jazz")).Equal([]string{"Rock", "Jazz"})
			g.Assert(SplitGenres("")).Equal([]string{})
		})
	})
}

package view

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/franela/goblin"

	"github.com/iliyamo/fyyur/internal/model"
)

func Test_View(t *testing.T) {
	g := goblin.Goblin(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	shows := []model.ShowListing{
		{ID: 1, VenueID: 1, ArtistID: 4, StartTime: now.Add(-48 * time.Hour)},
		{ID: 2, VenueID: 1, ArtistID: 4, StartTime: now},
		{ID: 3, VenueID: 3, ArtistID: 5, StartTime: now.Add(time.Second)},
		{ID: 4, VenueID: 3, ArtistID: 6, StartTime: now.Add(72 * time.Hour)},
	}

	g.Describe("PartitionShows", func() {
		g.It("puts a show starting exactly now in the past", func() {
			past, next := PartitionShows(shows, now)
			g.Assert(len(past)).Equal(2)
			g.Assert(len(next)).Equal(2)
			g.Assert(past[1].ID).Equal(uint64(2))
			g.Assert(next[0].ID).Equal(uint64(3))
		})

		g.It("always partitions the whole input", func() {
			for _, ref := range []time.Time{now.Add(-time.Hour * 1000), now, now.Add(time.Hour * 1000)} {
				past, next := PartitionShows(shows, ref)
				g.Assert(len(past) + len(next)).Equal(len(shows))
				for _, s := range past {
					g.Assert(s.StartTime.After(ref)).Equal(false)
				}
				for _, s := range next {
					g.Assert(s.StartTime.After(ref)).Equal(true)
				}
			}
		})

		g.It("returns empty slices for no shows", func() {
			past, next := PartitionShows(nil, now)
			g.Assert(past != nil && next != nil).Equal(true)
			b, _ := json.Marshal(past)
			g.Assert(string(b)).Equal("[]")
		})

		g.It("labels shows relative to now", func() {
			_, next := PartitionShows(shows, now)
			g.Assert(next[1].Relative).Equal("3 days from now")
		})
	})

	g.Describe("NewVenueDetail", func() {
		g.It("counts past and upcoming shows", func() {
			d := NewVenueDetail(&model.Venue{ID: 1, Name: "The Musical Hop"}, shows[:2], now)
			g.Assert(d.PastShowsCount).Equal(2)
			g.Assert(d.UpcomingShowsCount).Equal(0)
			g.Assert(d.Genres).Equal([]string{})
		})

		g.It("passes nil through", func() {
			g.Assert(NewVenueDetail(nil, shows, now) == nil).Equal(true)
			g.Assert(NewArtistDetail(nil, shows, now) == nil).Equal(true)
		})

		g.It("flattens the venue into the JSON document", func() {
			d := NewVenueDetail(&model.Venue{ID: 7, Name: "Hop", Genres: []string{"Rock", "Jazz"}}, nil, now)
			var doc map[string]any
			b, _ := json.Marshal(d)
			g.Assert(json.Unmarshal(b, &doc) == nil).Equal(true)
			g.Assert(doc["name"]).Equal("Hop")
			g.Assert(doc["genres"]).Equal([]any{"Rock", "Jazz"})
			g.Assert(doc["upcoming_shows_count"]).Equal(float64(0))
		})
	})

	g.Describe("Areas", func() {
		g.It("groups venues by city and state in first-seen order", func() {
			venues := []model.Venue{
				{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
				{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
				{ID: 3, Name: "Park Square", City: "San Francisco", State: "CA"},
				{ID: 4, Name: "Elsewhere", City: "San Francisco", State: "NM"},
			}
			areas := Areas(venues, shows, now)
			g.Assert(len(areas)).Equal(3)
			g.Assert(areas[0].City).Equal("San Francisco")
			g.Assert(len(areas[0].Venues)).Equal(2)
			g.Assert(areas[0].Venues[1].ID).Equal(uint64(3))
			g.Assert(areas[0].Venues[1].NumUpcomingShows).Equal(2)
			g.Assert(areas[0].Venues[0].NumUpcomingShows).Equal(0)
			g.Assert(areas[1].State).Equal("NY")
			g.Assert(areas[2].State).Equal("NM")
		})
	})

	g.Describe("Search results", func() {
		g.It("counts the matched items", func() {
			r := NewSearchResults("Hop", VenueItems([]model.Venue{{ID: 3, Name: "Hop"}}, shows, now))
			g.Assert(r.Count).Equal(1)
			g.Assert(r.Data[0].NumUpcomingShows).Equal(2)
			g.Assert(r.SearchTerm).Equal("Hop")
		})

		g.It("never returns null data", func() {
			r := NewSearchResults("", nil)
			g.Assert(r.Count).Equal(0)
			g.Assert(r.Data != nil).Equal(true)
		})

		g.It("counts upcoming shows per artist", func() {
			items := ArtistItems([]model.Artist{{ID: 4}, {ID: 6}}, shows, now)
			g.Assert(items[0].NumUpcomingShows).Equal(0)
			g.Assert(items[1].NumUpcomingShows).Equal(1)
		})
	})

	g.Describe("FormatDateTime", func() {
		g.It("renders both styles", func() {
			ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
			g.Assert(FormatDateTime(ts, "full")).Equal("Tuesday May, 21, 2019 at 9:30PM")
			g.Assert(FormatDateTime(ts, "medium")).Equal("Tue 05, 21, 2019 9:30PM")
			g.Assert(FormatDateTime(ts, "")).Equal("Tue 05, 21, 2019 9:30PM")
		})
	})
}

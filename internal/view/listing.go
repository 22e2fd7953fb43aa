package view

import (
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// Item is one entry of an area or a search result.
type Item struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues sharing a city and state.
type Area struct {
	City   string `json:"city"`
	State  string `json:"state"`
	Venues []Item `json:"venues"`
}

type areaKey struct{ city, state string }

// Areas groups venues by (city, state).  Areas appear in the order their
// first venue appears in venues, and venues keep their relative order.
func Areas(venues []model.Venue, shows []model.ShowListing, now time.Time) []Area {
	counts := upcomingByVenue(shows, now)
	out := []Area{}
	index := map[areaKey]int{}
	for _, v := range venues {
		k := areaKey{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Area{City: v.City, State: v.State, Venues: []Item{}})
		}
		out[i].Venues = append(out[i].Venues, Item{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return out
}

// SearchResults is the payload of the venue and artist search pages.
type SearchResults struct {
	Count      int    `json:"count"`
	Data       []Item `json:"data"`
	SearchTerm string `json:"search_term"`
}

// NewSearchResults wraps matched items with their count and the term.
func NewSearchResults(term string, items []Item) SearchResults {
	if items == nil {
		items = []Item{}
	}
	return SearchResults{Count: len(items), Data: items, SearchTerm: term}
}

// VenueItems lists venues with their number of upcoming shows.
func VenueItems(venues []model.Venue, shows []model.ShowListing, now time.Time) []Item {
	counts := upcomingByVenue(shows, now)
	out := make([]Item, 0, len(venues))
	for _, v := range venues {
		out = append(out, Item{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return out
}

// ArtistItems lists artists with their number of upcoming shows.
func ArtistItems(artists []model.Artist, shows []model.ShowListing, now time.Time) []Item {
	counts := map[uint64]int{}
	for _, s := range shows {
		if upcoming(s.StartTime, now) {
			counts[s.ArtistID]++
		}
	}
	out := make([]Item, 0, len(artists))
	for _, a := range artists {
		out = append(out, Item{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return out
}

func upcomingByVenue(shows []model.ShowListing, now time.Time) map[uint64]int {
	counts := map[uint64]int{}
	for _, s := range shows {
		if upcoming(s.StartTime, now) {
			counts[s.VenueID]++
		}
	}
	return counts
}

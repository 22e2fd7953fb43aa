package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/view"
	"github.com/iliyamo/fyyur/web"
)

// ListShows handles GET /shows: every show, earliest first.
func (h *Handler) ListShows(c echo.Context) error {
	shows, err := h.Shows.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return h.respond(c, "pages/shows.html", "Shows", view.NewShowRows(shows, h.now()))
}

// NewShowForm handles GET /shows/create.
func (h *Handler) NewShowForm(c echo.Context) error {
	return h.page(c, http.StatusOK, "forms/new_show.html", web.Page{Title: "New show"})
}

// CreateShow handles POST /shows/create.  A show naming an artist or a
// venue that does not exist is rejected and nothing is written.
func (h *Handler) CreateShow(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	var s model.Show
	err = form.Decode(values, form.ShowFields, &s)
	if err == nil {
		err = c.Validate(&s)
	}
	if err != nil {
		return h.invalid(c, "show.create", "", "An error occurred. Show could not be listed.",
			"forms/new_show.html", web.Page{Form: values}, err)
	}

	if err := h.Shows.Create(c.Request().Context(), &s); err != nil {
		logFailure(c, err, "show", "")
		return h.failed(c, err, "An error occurred. Show could not be listed.")
	}
	start := s.StartTime
	h.committed(c, queue.ListingEvent{Kind: queue.ShowListed, ID: s.ID, ArtistID: s.ArtistID, VenueID: s.VenueID, StartTime: &start})
	return h.listed(c, s.ID, "Show was successfully listed!")
}

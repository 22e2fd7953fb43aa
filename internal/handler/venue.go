package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/view"
	"github.com/iliyamo/fyyur/web"
)

// ListVenues handles GET /venues: every venue grouped by city and state.
func (h *Handler) ListVenues(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.ListAll(ctx)
	if err != nil {
		return err
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return err
	}
	return h.respond(c, "pages/venues.html", "Venues", view.Areas(venues, shows, h.now()))
}

// SearchVenues handles POST /venues/search.  The term matches name, city
// or state, ignoring case.
func (h *Handler) SearchVenues(c echo.Context) error {
	ctx := c.Request().Context()
	term := c.FormValue("search_term")
	venues, err := h.Venues.SearchVenues(ctx, term)
	if err != nil {
		return err
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return err
	}
	res := view.NewSearchResults(term, view.VenueItems(venues, shows, h.now()))
	return h.respond(c, "pages/search_venues.html", "Search venues", res)
}

// GetVenue handles GET /venues/:id.
func (h *Handler) GetVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	v, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Venue %d does not exist.", id))
		}
		return err
	}
	shows, err := h.Shows.ListByVenue(ctx, id)
	if err != nil {
		return err
	}
	return h.respond(c, "pages/show_venue.html", v.Name, view.NewVenueDetail(v, shows, h.now()))
}

// NewVenueForm handles GET /venues/create.
func (h *Handler) NewVenueForm(c echo.Context) error {
	return h.page(c, http.StatusOK, "forms/new_venue.html", web.Page{Title: "New venue"})
}

// CreateVenue handles POST /venues/create.  Success or not,
// it answers with the home page and a flash.
func (h *Handler) CreateVenue(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	var v model.Venue
	err = form.Decode(values, form.VenueFields, &v)
	if err == nil {
		err = c.Validate(&v)
	}
	if err != nil {
		return h.invalid(c, "venue.create", v.Name, fmt.Sprintf("An error occurred. Venue %s could not be listed.", v.Name),
			"forms/new_venue.html", web.Page{Form: values}, err)
	}

	if err := h.Venues.Create(c.Request().Context(), &v); err != nil {
		logFailure(c, err, "venue", v.Name)
		return h.failed(c, err, fmt.Sprintf("An error occurred. Venue %s could not be listed.", v.Name))
	}
	h.committed(c, queue.ListingEvent{Kind: queue.VenueListed, ID: v.ID, Name: v.Name, City: v.City, State: v.State, Genres: v.Genres})
	return h.listed(c, v.ID, fmt.Sprintf("Venue %s was successfully listed!", v.Name))
}

// EditVenueForm handles GET /venues/:id/edit with the form pre-filled.
func (h *Handler) EditVenueForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return echo.ErrNotFound
		}
		return err
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, v)
	}
	return h.page(c, http.StatusOK, "forms/edit_venue.html", web.Page{
		Title:  "Edit " + v.Name,
		Form:   form.Encode(v, form.VenueFields),
		Action: fmt.Sprintf("/venues/%d/edit", id),
	})
}

// UpdateVenue handles POST /venues/:id/edit.  Every field is overwritten
// with the submitted value; the client is sent back to the venue page.
func (h *Handler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	v := model.Venue{ID: id}
	err = form.Decode(values, form.VenueFields, &v)
	if err == nil {
		err = c.Validate(&v)
	}
	if err != nil {
		return h.invalid(c, "venue.update", v.Name, fmt.Sprintf("An error occurred. Venue %s could not be updated.", v.Name),
			"forms/edit_venue.html", web.Page{Form: values, Action: fmt.Sprintf("/venues/%d/edit", id)}, err)
	}

	detail := fmt.Sprintf("/venues/%d", id)
	if err := h.Venues.Update(c.Request().Context(), &v); err != nil {
		if repository.IsNotFound(err) {
			return echo.ErrNotFound
		}
		logFailure(c, err, "venue", v.Name)
		flash(c, "error", fmt.Sprintf("An error occurred. Venue %s could not be updated.", v.Name))
		if wantsJSON(c) {
			return mutationJSON(c, failureStatus(err), 0, takeFlashes(c))
		}
		return redirect(c, detail)
	}
	h.committed(c, queue.ListingEvent{Kind: queue.VenueUpdated, ID: v.ID, Name: v.Name, City: v.City, State: v.State, Genres: v.Genres})
	flash(c, "message", fmt.Sprintf("Venue %s was successfully updated!", v.Name))
	if wantsJSON(c) {
		return mutationJSON(c, http.StatusOK, v.ID, takeFlashes(c))
	}
	return redirect(c, detail)
}

// DeleteVenue handles DELETE /venues/:id.  It always answers JSON
// {"success": bool, "error": string}; the flash is kept for the page the
// client navigates to next.
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, deleteResult{Error: "Venue not found."})
	}
	v, err := h.Venues.Delete(c.Request().Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, deleteResult{Error: fmt.Sprintf("Venue %d does not exist.", id)})
		}
		logFailure(c, err, "venue", fmt.Sprint(id))
		msg := fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id)
		flash(c, "error", msg)
		keepFlashes(c)
		return c.JSON(failureStatus(err), deleteResult{Error: msg})
	}
	h.committed(c, queue.ListingEvent{Kind: queue.VenueDeleted, ID: v.ID, Name: v.Name})
	flash(c, "message", fmt.Sprintf("Venue %s was successfully deleted!", v.Name))
	keepFlashes(c)
	return c.JSON(http.StatusOK, deleteResult{Success: true})
}

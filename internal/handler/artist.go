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

// ListArtists handles GET /artists.
func (h *Handler) ListArtists(c echo.Context) error {
	ctx := c.Request().Context()
	artists, err := h.Artists.ListAll(ctx)
	if err != nil {
		return err
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return err
	}
	return h.respond(c, "pages/artists.html", "Artists", view.ArtistItems(artists, shows, h.now()))
}

// SearchArtists handles POST /artists/search on artist names.
func (h *Handler) SearchArtists(c echo.Context) error {
	ctx := c.Request().Context()
	term := c.FormValue("search_term")
	artists, err := h.Artists.SearchArtists(ctx, term)
	if err != nil {
		return err
	}
	shows, err := h.Shows.ListAll(ctx)
	if err != nil {
		return err
	}
	res := view.NewSearchResults(term, view.ArtistItems(artists, shows, h.now()))
	return h.respond(c, "pages/search_artists.html", "Search artists", res)
}

// GetArtist handles GET /artists/:id.
func (h *Handler) GetArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Artist %d does not exist.", id))
		}
		return err
	}
	shows, err := h.Shows.ListByArtist(ctx, id)
	if err != nil {
		return err
	}
	return h.respond(c, "pages/show_artist.html", a.Name, view.NewArtistDetail(a, shows, h.now()))
}

// NewArtistForm handles GET /artists/create.
func (h *Handler) NewArtistForm(c echo.Context) error {
	return h.page(c, http.StatusOK, "forms/new_artist.html", web.Page{Title: "New artist"})
}

// CreateArtist handles POST /artists/create.
func (h *Handler) CreateArtist(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	var a model.Artist
	err = form.Decode(values, form.ArtistFields, &a)
	if err == nil {
		err = c.Validate(&a)
	}
	if err != nil {
		return h.invalid(c, "artist.create", a.Name, fmt.Sprintf("An error occurred. Artist %s could not be listed.", a.Name),
			"forms/new_artist.html", web.Page{Form: values}, err)
	}

	if err := h.Artists.Create(c.Request().Context(), &a); err != nil {
		logFailure(c, err, "artist", a.Name)
		return h.failed(c, err, fmt.Sprintf("An error occurred. Artist %s could not be listed.", a.Name))
	}
	h.committed(c, queue.ListingEvent{Kind: queue.ArtistListed, ID: a.ID, Name: a.Name, City: a.City, State: a.State, Genres: a.Genres})
	return h.listed(c, a.ID, fmt.Sprintf("Artist %s was successfully listed!", a.Name))
}

// EditArtistForm handles GET /artists/:id/edit.
func (h *Handler) EditArtistForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	a, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return echo.ErrNotFound
		}
		return err
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, a)
	}
	return h.page(c, http.StatusOK, "forms/edit_artist.html", web.Page{
		Title:  "Edit " + a.Name,
		Form:   form.Encode(a, form.ArtistFields),
		Action: fmt.Sprintf("/artists/%d/edit", id),
	})
}

// UpdateArtist handles POST /artists/:id/edit as a full overwrite.
func (h *Handler) UpdateArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed form")
	}
	a := model.Artist{ID: id}
	err = form.Decode(values, form.ArtistFields, &a)
	if err == nil {
		err = c.Validate(&a)
	}
	if err != nil {
		return h.invalid(c, "artist.update", a.Name, fmt.Sprintf("An error occurred. Artist %s could not be updated.", a.Name),
			"forms/edit_artist.html", web.Page{Form: values, Action: fmt.Sprintf("/artists/%d/edit", id)}, err)
	}

	detail := fmt.Sprintf("/artists/%d", id)
	if err := h.Artists.Update(c.Request().Context(), &a); err != nil {
		if repository.IsNotFound(err) {
			return echo.ErrNotFound
		}
		logFailure(c, err, "artist", a.Name)
		flash(c, "error", fmt.Sprintf("An error occurred. Artist %s could not be updated.", a.Name))
		if wantsJSON(c) {
			return mutationJSON(c, failureStatus(err), 0, takeFlashes(c))
		}
		return redirect(c, detail)
	}
	h.committed(c, queue.ListingEvent{Kind: queue.ArtistUpdated, ID: a.ID, Name: a.Name, City: a.City, State: a.State, Genres: a.Genres})
	flash(c, "message", fmt.Sprintf("Artist %s was successfully updated!", a.Name))
	if wantsJSON(c) {
		return mutationJSON(c, http.StatusOK, a.ID, takeFlashes(c))
	}
	return redirect(c, detail)
}

// DeleteArtist handles DELETE /artists/:id, removing the artist's shows
// as well.
func (h *Handler) DeleteArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, deleteResult{Error: "Artist not found."})
	}
	a, err := h.Artists.Delete(c.Request().Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, deleteResult{Error: fmt.Sprintf("Artist %d does not exist.", id)})
		}
		logFailure(c, err, "artist", fmt.Sprint(id))
		msg := fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id)
		flash(c, "error", msg)
		keepFlashes(c)
		return c.JSON(failureStatus(err), deleteResult{Error: msg})
	}
	h.committed(c, queue.ListingEvent{Kind: queue.ArtistDeleted, ID: a.ID, Name: a.Name})
	flash(c, "message", fmt.Sprintf("Artist %s was successfully deleted!", a.Name))
	keepFlashes(c)
	return c.JSON(http.StatusOK, deleteResult{Success: true})
}

// Package handler exposes the HTTP handlers of the directory.  Pages are
// rendered through the echo Renderer; a client sending
// "Accept: application/json" receives the same data as JSON instead.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/web"
)

// Publisher delivers listing events.  queue.Publisher implements it.
type Publisher interface {
	Publish(ctx context.Context, ev queue.ListingEvent) error
}

// Handler bundles the repositories and the optional side channels used
// by every route.
type Handler struct {
	Venues  *repository.VenueRepo  // venue persistence
	Artists *repository.ArtistRepo // artist persistence
	Shows   *repository.ShowRepo   // show persistence

	// Events receives a ListingEvent after each committed mutation.
	// Nil disables publishing.
	Events Publisher
	// Invalidate drops cached pages after each committed mutation.  Nil
	// means there is no cache.
	Invalidate func(ctx context.Context) error
	// Now returns the reference time for past/upcoming splits.
	Now func() time.Time
}

// New constructs a Handler and panics if a repository is nil.
func New(venues *repository.VenueRepo, artists *repository.ArtistRepo, shows *repository.ShowRepo) *Handler {
	if venues == nil || artists == nil || shows == nil {
		panic("nil repository passed to handler.New")
	}
	return &Handler{Venues: venues, Artists: artists, Shows: shows, Now: time.Now}
}

// Home renders the landing page with any pending flashes.
func (h *Handler) Home(c echo.Context) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, echo.Map{"flashes": takeFlashes(c)})
	}
	return h.page(c, http.StatusOK, "pages/home.html", web.Page{})
}

// now evaluates the reference time once per request.
func (h *Handler) now() time.Time {
	if h.Now == nil {
		return time.Now().UTC()
	}
	return h.Now().UTC()
}

// page renders a template with the flashes collected so far.
func (h *Handler) page(c echo.Context, status int, name string, p web.Page) error {
	p.Flashes = append(takeFlashes(c), p.Flashes...)
	return c.Render(status, name, p)
}

// respond sends data as JSON when the client asks for it and renders
// the named page otherwise.
func (h *Handler) respond(c echo.Context, name, title string, data any) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, data)
	}
	return h.page(c, http.StatusOK, name, web.Page{Title: title, Data: data})
}

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// parseID reads the :id path parameter.  Malformed ids are reported as
// not found; the route simply does not exist for them.
func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

// committed runs the side effects of a successful mutation.  Neither a
// cache nor a broker failure undoes the mutation; both are only logged.
func (h *Handler) committed(c echo.Context, ev queue.ListingEvent) {
	ctx := c.Request().Context()
	if h.Invalidate != nil {
		if err := h.Invalidate(ctx); err != nil {
			c.Logger().Warnj(log.JSON{"op": "cache.invalidate", "error": err.Error(), "request_id": requestID(c)})
		}
	}
	if h.Events != nil {
		if err := h.Events.Publish(ctx, ev); err != nil {
			c.Logger().Warnj(log.JSON{"op": "events.publish", "kind": ev.Kind, "error": err.Error(), "request_id": requestID(c)})
		}
	}
}

// logFailure records a failed store operation with its kind.
func logFailure(c echo.Context, err error, entity, name string) {
	op := ""
	var f *repository.Failure
	if errors.As(err, &f) {
		op = f.Op
	}
	c.Logger().Errorj(log.JSON{
		"op":         op,
		"kind":       repository.KindOf(err).String(),
		"entity":     entity,
		"name":       name,
		"error":      err.Error(),
		"request_id": requestID(c),
	})
}

// failureStatus maps a store failure to the status of a JSON answer.
func failureStatus(err error) int {
	switch repository.KindOf(err) {
	case repository.KindNotFound:
		return http.StatusNotFound
	case repository.KindConstraint, repository.KindInvalid:
		return http.StatusUnprocessableEntity
	case repository.KindConnection:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// timeDependent lists the routes whose answer splits shows around the
// current time.
var timeDependent = map[string]bool{
	"/venues":      true,
	"/venues/:id":  true,
	"/artists":     true,
	"/artists/:id": true,
	"/shows":       true,
}

// NoCache reports whether a request must bypass the page cache: it
// carries flashes, or its page depends on the current time.
func NoCache(c echo.Context) bool {
	return HasFlash(c) || timeDependent[c.Path()]
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

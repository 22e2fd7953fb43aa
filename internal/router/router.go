// Package router builds the echo instance: the middleware stack and the
// route table.
package router

import (
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/middleware"
)

// Options carries the collaborators of the middleware stack.  A nil
// Redis client disables both the page cache and the rate limiter; a nil
// Sessions store gets a cookie store with a random key.
type Options struct {
	Renderer  echo.Renderer
	Sessions  sessions.Store
	Redis     *redis.Client
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
}

// New returns an echo instance serving every route of h.
func New(h *handler.Handler, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = opts.Renderer
	e.Validator = form.NewValidator()
	e.HTTPErrorHandler = h.ErrorHandler

	// Pre runs before routing: /venues/ matches /venues, and HTML forms
	// can tunnel DELETE through POST with X-HTTP-Method-Override.
	e.Pre(echomw.RemoveTrailingSlash())
	e.Pre(echomw.MethodOverride())

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			j := log.JSON{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			}
			if v.Error != nil {
				j["error"] = v.Error.Error()
			}
			c.Logger().Infoj(j)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	store := opts.Sessions
	if store == nil {
		store = handler.NewSessionStore("")
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.NewTokenBucket(opts.RateLimit, opts.Redis))
	e.Use(middleware.NewRedisCache(opts.Cache, opts.Redis, handler.NoCache))

	RegisterRoutes(e, h)
	return e
}

// RegisterRoutes maps every path of the directory onto h.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	e.GET("/", h.Home)
	e.GET("/healthz", handler.Health)

	// ---- Venues ----
	e.GET("/venues", h.ListVenues)
	e.POST("/venues/search", h.SearchVenues)
	e.GET("/venues/create", h.NewVenueForm)
	e.POST("/venues/create", h.CreateVenue)
	e.GET("/venues/:id", h.GetVenue)
	e.DELETE("/venues/:id", h.DeleteVenue)
	e.GET("/venues/:id/edit", h.EditVenueForm)
	e.POST("/venues/:id/edit", h.UpdateVenue)

	// ---- Artists ----
	e.GET("/artists", h.ListArtists)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/create", h.NewArtistForm)
	e.POST("/artists/create", h.CreateArtist)
	e.GET("/artists/:id", h.GetArtist)
	e.DELETE("/artists/:id", h.DeleteArtist)
	e.GET("/artists/:id/edit", h.EditArtistForm)
	e.POST("/artists/:id/edit", h.UpdateArtist)

	// ---- Shows ----
	e.GET("/shows", h.ListShows)
	e.GET("/shows/create", h.NewShowForm)
	e.POST("/shows/create", h.CreateShow)
}

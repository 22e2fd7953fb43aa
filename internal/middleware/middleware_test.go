package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franela/goblin"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/config"
)

func Test_Middleware(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("cacheKey", func() {
		cfg := config.CacheConfig{Prefix: "fyyur:cache", KeyStrategy: "route_query"}

		g.It("separates HTML and JSON renditions of a page", func() {
			html := httptest.NewRequest(http.MethodGet, "/venues/1", nil)
			js := httptest.NewRequest(http.MethodGet, "/venues/1", nil)
			js.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
			g.Assert(cacheKey(cfg, html, "/venues/:id") == cacheKey(cfg, js, "/venues/:id")).Equal(false)
		})

		g.It("separates ids sharing a route", func() {
			one := httptest.NewRequest(http.MethodGet, "/venues/1", nil)
			two := httptest.NewRequest(http.MethodGet, "/venues/2", nil)
			g.Assert(cacheKey(cfg, one, "/venues/:id") == cacheKey(cfg, two, "/venues/:id")).Equal(false)
		})

		g.It("is stable and prefixed", func() {
			r := httptest.NewRequest(http.MethodGet, "/venues", nil)
			k := cacheKey(cfg, r, "/venues")
			g.Assert(k).Equal(cacheKey(cfg, r, "/venues"))
			g.Assert(k[:len("fyyur:cache:")]).Equal("fyyur:cache:")
		})
	})

	g.Describe("payload", func() {
		g.It("restores status, headers and body", func() {
			hdr := http.Header{}
			hdr.Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
			bs, err := encodePayload(http.StatusOK, hdr, []byte("<h1>Venues</h1>"))
			g.Assert(err == nil).Equal(true)
			status, got, body, ok := decodePayload(bs)
			g.Assert(ok).Equal(true)
			g.Assert(status).Equal(http.StatusOK)
			g.Assert(got.Get(echo.HeaderContentType)).Equal(echo.MIMETextHTMLCharsetUTF8)
			g.Assert(string(body)).Equal("<h1>Venues</h1>")
		})

		g.It("rejects truncated payloads", func() {
			_, _, _, ok := decodePayload([]byte{0, 0, 0})
			g.Assert(ok).Equal(false)
			_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 0, 50, '{'})
			g.Assert(ok).Equal(false)
		})
	})

	g.Describe("disabled middleware", func() {
		g.It("passes requests through without redis", func() {
			e := echo.New()
			called := 0
			h := func(c echo.Context) error { called++; return c.String(http.StatusOK, "ok") }
			wrapped := NewRedisCache(config.CacheConfig{Enabled: true}, nil, nil)(NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)(h))
			rec := httptest.NewRecorder()
			g.Assert(wrapped(e.NewContext(httptest.NewRequest(http.MethodPost, "/venues/create", nil), rec)) == nil).Equal(true)
			g.Assert(called).Equal(1)
			g.Assert(Invalidate(context.Background(), nil, "fyyur:cache") == nil).Equal(true)
		})
	})

	g.Describe("rateKey", func() {
		g.It("keys by ip and route by default", func() {
			cfg := config.RateLimitConfig{Prefix: "fyyur:rl", KeyStrategy: "ip_route"}
			g.Assert(rateKey(cfg, "10.0.0.1", "POST", "/venues/create")).Equal("fyyur:rl:ip:10.0.0.1:route:POST /venues/create")
		})

		g.It("falls back to unknown without a client ip", func() {
			cfg := config.RateLimitConfig{Prefix: "fyyur:rl", KeyStrategy: "ip"}
			g.Assert(rateKey(cfg, "", "POST", "/venues/create")).Equal("fyyur:rl:ip:unknown")
		})
	})

	g.Describe("limited", func() {
		cfg := config.RateLimitConfig{
			Methods: map[string]bool{"POST": true, "DELETE": true},
			Exempt:  map[string]bool{"/venues/search": true, "/artists/search": true},
		}

		g.It("spends tokens on submissions", func() {
			g.Assert(limited(cfg, "POST", "/venues/create")).Equal(true)
			g.Assert(limited(cfg, "delete", "/venues/:id")).Equal(true)
		})

		g.It("lets searches and page views through", func() {
			g.Assert(limited(cfg, "POST", "/venues/search")).Equal(false)
			g.Assert(limited(cfg, "POST", "/artists/search")).Equal(false)
			g.Assert(limited(cfg, "GET", "/venues")).Equal(false)
		})
	})

	g.Describe("RetryAfterSeconds", func() {
		g.It("rounds up", func() {
			g.Assert(RetryAfterSeconds(0)).Equal(0)
			g.Assert(RetryAfterSeconds(1)).Equal(1)
			g.Assert(RetryAfterSeconds(2000)).Equal(2)
			g.Assert(RetryAfterSeconds(2001)).Equal(3)
		})
	})
}

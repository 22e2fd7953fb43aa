package handler

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/web"
)

const (
	// flashSession names the signed cookie carrying flashes across a
	// redirect.  It holds nothing else.
	flashSession = "fyyur_flash"
	flashKey     = "flashes"
	flashMaxAge  = 60 // seconds
)

func init() {
	gob.Register(web.Flash{})
}

// NewSessionStore returns the signed cookie store backing flash
// messages.  An empty secret gets a random key; pending flashes then do
// not survive a restart.
func NewSessionStore(secret string) *sessions.CookieStore {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(flashMaxAge)
	return store
}

// flash queues a message for the next rendered page.
func flash(c echo.Context, category, message string) {
	pending, _ := c.Get(flashKey).([]web.Flash)
	c.Set(flashKey, append(pending, web.Flash{Category: category, Message: message}))
}

// takeFlashes returns the messages carried by the session cookie plus
// those queued by this request, and clears both.  A cookie that fails
// the signature check is dropped without being read.
func takeFlashes(c echo.Context) []web.Flash {
	var out []web.Flash
	if HasFlash(c) {
		if sess, err := session.Get(flashSession, c); sess != nil {
			if err == nil {
				for _, v := range sess.Flashes() {
					if f, ok := v.(web.Flash); ok {
						out = append(out, f)
					}
				}
			}
			sess.Options.MaxAge = -1
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				c.Logger().Warn(err)
			}
		}
	}
	pending, _ := c.Get(flashKey).([]web.Flash)
	c.Set(flashKey, nil)
	return append(out, pending...)
}

// keepFlashes moves the queued messages into the session.  It is
// called before answering without a page, e.g. on redirects.
func keepFlashes(c echo.Context) {
	pending, _ := c.Get(flashKey).([]web.Flash)
	if len(pending) == 0 {
		return
	}
	sess, _ := session.Get(flashSession, c)
	if sess == nil {
		return
	}
	for _, f := range pending {
		sess.AddFlash(f)
	}
	sess.Options.MaxAge = flashMaxAge
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warn(err)
		return
	}
	c.Set(flashKey, nil)
}

// redirect answers 303 See Other, keeping queued flashes.
func redirect(c echo.Context, url string) error {
	keepFlashes(c)
	return c.Redirect(http.StatusSeeOther, url)
}

// HasFlash reports whether the request carries flash messages.  Such
// requests must not be answered from the page cache.
func HasFlash(c echo.Context) bool {
	_, err := c.Cookie(flashSession)
	return err == nil
}

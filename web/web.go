// Package web holds the HTML templates and the echo.Renderer that
// executes them.  Every page is parsed together with the layout and the
// shared partials so pages can be rendered by their path, e.g.
// "pages/show_venue.html".
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/view"
)

//go:embed templates
var files embed.FS

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"` // "message" or "error"
	Message  string `json:"message"`
}

// Page is the value every template is executed with.
type Page struct {
	Title   string
	Flashes []Flash
	Data    any
	Form    url.Values // submitted or pre-filled form values
	Errors  []string   // validation messages for Form
	Action  string     // form target for edit pages
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"datetime": view.FormatDateTime,
	"genres":   form.JoinGenres,
	"has": func(values url.Values, name, want string) bool {
		for _, v := range values[name] {
			if v == want {
				return true
			}
		}
		return false
	},
	"genreChoices": func() []string { return GenreChoices },
	"stateChoices": func() []string { return StateChoices },
}

// NewRenderer parses every page template.
func NewRenderer() (*Renderer, error) {
	shared, err := template.New("").Funcs(funcs).ParseFS(files, "templates/layouts/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse layout: %w", err)
	}
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, dir := range []string{"pages", "forms", "errors"} {
		names, err := fs.Glob(files, path.Join("templates", dir, "*.html"))
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			t, err := shared.Clone()
			if err != nil {
				return nil, err
			}
			if _, err := t.ParseFS(files, name); err != nil {
				return nil, fmt.Errorf("web: parse %s: %w", name, err)
			}
			r.pages[strings.TrimPrefix(name, "templates/")] = t
		}
	}
	return r, nil
}

// Render implements echo.Renderer.  Data that is not a Page is wrapped
// into one.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("web: unknown template %q", name)
	}
	p, ok := data.(Page)
	if !ok {
		if pp, isPtr := data.(*Page); isPtr && pp != nil {
			p = *pp
		} else {
			p = Page{Data: data}
		}
	}
	return t.ExecuteTemplate(w, "layout", p)
}

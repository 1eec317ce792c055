// Package views renders the HTML pages and serves their static assets.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const baseTemplate = "layout.html"

// Pages rendered inside the layout.
const (
	PagePortfolio     = "portfolio.html"
	PageAbout         = "about.html"
	PageLogin         = "login.html"
	PageDashboard     = "dashboard.html"
	PageProjectForm   = "project_form.html"
	PageConfirmDelete = "confirm_delete.html"
)

// Renderer holds every page parsed together with the base layout.
type Renderer struct {
	pages  map[string]*template.Template
	logger zerolog.Logger
}

func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		pages:  make(map[string]*template.Template),
		logger: log.With().Str("component", "renderer").Logger(),
	}
	for _, name := range names {
		page := strings.TrimPrefix(name, "templates/")
		if page == baseTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).Funcs(funcs).ParseFS(templateFS, "templates/"+baseTemplate, name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render executes page with the base layout. Output is buffered so a template error never leaves
// a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, baseTemplate, data); err != nil {
		r.logger.Error().Err(err).Str("page", page).Msg("error rendering template")
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded assets; mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

var funcs = template.FuncMap{
	"reveal": reveal,
	"join":   strings.Join,
	"safeURL": func(s string) template.URL {
		// image sources are either http(s) URLs or data URIs produced from an upload
		if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
			return template.URL(s)
		}
		return ""
	},
	"isDataURI": func(s string) bool {
		return strings.HasPrefix(s, "data:")
	},
	"lines": func(s string) []string {
		return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	},
}

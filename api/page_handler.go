package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rpupo63/portfolio-site/catalog"
	"github.com/rpupo63/portfolio-site/site"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pageHandler struct {
	logger     zerolog.Logger
	state      *site.State
	renderer   *views.Renderer
	sessions   sessionManager
	flashClear time.Duration
}

func newPageHandler(state *site.State, renderer *views.Renderer, sessions sessionManager, flashClear time.Duration) pageHandler {
	return pageHandler{
		logger:     log.With().Str("handlerName", "pageHandler").Logger(),
		state:      state,
		renderer:   renderer,
		sessions:   sessions,
		flashClear: flashClear,
	}
}

// root sends the visitor to the page ResolvePage picks for the current session
func (h pageHandler) root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := site.ResolvePage(h.sessions.loggedIn(r), "")
		http.Redirect(w, r, page.Path(), http.StatusSeeOther)
	}
}

// portfolio renders one partition of the catalog with the search, tag and sort controls
func (h pageHandler) portfolio(page site.Page) http.HandlerFunc {
	projectType, _ := page.ProjectType()

	return func(w http.ResponseWriter, r *http.Request) {
		if h.redirectIfAdmin(w, r, page) {
			return
		}

		params := r.URL.Query()
		query := catalog.Query{
			Type:   projectType,
			Search: params.Get("q"),
			Tags:   params["tag"],
			Sort:   catalog.ParseSortOrder(params.Get("sort")),
		}
		projects := h.state.Query(query)

		h.render(w, r, http.StatusOK, views.PagePortfolio, page, views.PageData{
			Title: page.Label(),
			Portfolio: views.Portfolio{
				Heading:     page.Label() + " Projects",
				Path:        page.Path(),
				Search:      query.Search,
				SortOptions: sortOptions(query.Sort),
				Tags:        tagOptions(page.Path(), query, h.state.Tags()),
				Selected:    query.Tags,
				Projects:    projects,
				NoResults:   len(projects) == 0,
				HasFilters:  query.Search != "" || len(query.Tags) > 0,
			},
		})
	}
}

func (h pageHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.redirectIfAdmin(w, r, site.PageAbout) {
			return
		}
		h.render(w, r, http.StatusOK, views.PageAbout, site.PageAbout, views.PageData{Title: site.PageAbout.Label()})
	}
}

// redirectIfAdmin applies ResolvePage: a logged-in visitor always lands on the admin view
func (h pageHandler) redirectIfAdmin(w http.ResponseWriter, r *http.Request, requested site.Page) bool {
	resolved := site.ResolvePage(h.sessions.loggedIn(r), requested)
	if resolved == requested {
		return false
	}
	http.Redirect(w, r, resolved.Path(), http.StatusSeeOther)
	return true
}

// render fills the layout fields shared by every page and writes the template
func (h pageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, current site.Page, data views.PageData) {
	data.LoggedIn = h.sessions.loggedIn(r)
	data.Nav = navItems(current, data.LoggedIn)
	data.Flash = h.sessions.popFlash(w, r)
	data.FlashClearMS = int(h.flashClear / time.Millisecond)

	if err := h.renderer.Render(w, status, name, data); err != nil {
		h.logger.Error().Err(err).Str("page", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func navItems(current site.Page, loggedIn bool) []views.NavItem {
	items := make([]views.NavItem, 0, len(site.NavPages))
	for _, p := range site.NavPages {
		target := p
		if p == site.PageAdminLogin && loggedIn {
			target = site.PageAdmin
		}
		items = append(items, views.NavItem{
			Label:  target.Label(),
			Path:   target.Path(),
			Active: target == current,
		})
	}
	return items
}

func sortOptions(selected catalog.SortOrder) []views.Option {
	options := make([]views.Option, 0, len(catalog.SortOrders))
	for _, o := range catalog.SortOrders {
		options = append(options, views.Option{Value: string(o), Label: o.Label(), Selected: o == selected})
	}
	return options
}

// tagOptions builds one facet link per tag; following it toggles that tag and keeps the rest of the query
func tagOptions(path string, q catalog.Query, tags []string) []views.TagOption {
	options := make([]views.TagOption, 0, len(tags))
	for _, tag := range tags {
		selected := false
		for _, s := range q.Tags {
			if s == tag {
				selected = true
				break
			}
		}
		options = append(options, views.TagOption{
			Name:     tag,
			Selected: selected,
			URL:      portfolioURL(path, q.Search, catalog.ToggleTag(q.Tags, tag), q.Sort),
		})
	}
	return options
}

func portfolioURL(path, search string, tags []string, sort catalog.SortOrder) string {
	values := url.Values{}
	if search != "" {
		values.Set("q", search)
	}
	for _, t := range tags {
		values.Add("tag", t)
	}
	if sort != catalog.SortDateDesc {
		values.Set("sort", string(sort))
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

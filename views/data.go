package views

import (
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/site"
)

type NavItem struct {
	Label  string
	Path   string
	Active bool
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// TagOption is one facet link; URL toggles the tag in the current query.
type TagOption struct {
	Name     string
	Selected bool
	URL      string
}

type Portfolio struct {
	Heading     string
	Path        string
	Search      string
	SortOptions []Option
	Tags        []TagOption
	Selected    []string
	Projects    []models.Project
	NoResults   bool
	HasFilters  bool
}

type Dashboard struct {
	Projects []models.Project
}

type Form struct {
	Editing      bool
	Action       string
	Draft        site.ProjectDraft
	Types        []Option
	Difficulties []Option
}

// PageData is passed to every template; page-specific sections are left zero when unused.
type PageData struct {
	Title        string
	Nav          []NavItem
	LoggedIn     bool
	Flash        string
	FlashClearMS int
	Error        string

	Portfolio Portfolio
	Dashboard Dashboard
	Form      Form
	Project   models.Project
}

package site

import "github.com/rpupo63/portfolio-site/models"

// Page is one top-level view.
type Page string

const (
	PageFrontend   Page = "frontend"
	PageUXDesign   Page = "ux-design"
	PageAbout      Page = "about"
	PageAdminLogin Page = "admin-login"
	PageAdmin      Page = "admin"
)

// NavPages are the entries of the header, in order.
var NavPages = []Page{PageFrontend, PageUXDesign, PageAbout, PageAdminLogin}

// ResolvePage picks the view to render: the admin view whenever logged in, otherwise the requested
// public page, defaulting to Frontend.
func ResolvePage(loggedIn bool, requested Page) Page {
	if loggedIn {
		return PageAdmin
	}
	switch requested {
	case PageFrontend, PageUXDesign, PageAbout, PageAdminLogin:
		return requested
	default:
		return PageFrontend
	}
}

func (p Page) Path() string {
	switch p {
	case PageUXDesign:
		return "/ux-design"
	case PageAbout:
		return "/about"
	case PageAdminLogin:
		return "/admin/login"
	case PageAdmin:
		return "/admin"
	default:
		return "/frontend"
	}
}

func (p Page) Label() string {
	switch p {
	case PageUXDesign:
		return "UX Design"
	case PageAbout:
		return "About"
	case PageAdminLogin, PageAdmin:
		return "Admin"
	default:
		return "Frontend"
	}
}

// ProjectType is the catalog partition shown on p; ok is false for non-portfolio pages.
func (p Page) ProjectType() (models.ProjectType, bool) {
	switch p {
	case PageFrontend:
		return models.ProjectTypeFrontend, true
	case PageUXDesign:
		return models.ProjectTypeUXDesign, true
	default:
		return "", false
	}
}

package api

import (
	"time"

	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/site"
	"github.com/rpupo63/portfolio-site/views"
)

// maxJSONBytes bounds API request bodies that carry no image
const maxJSONBytes = 64 << 10

// handlerDeps is everything the handlers share
type handlerDeps struct {
	state         *site.State
	renderer      *views.Renderer
	sessions      sessionManager
	tokens        tokenIssuer
	notifier      services.PasswordChangeNotifier
	maxImageBytes int64
	flashClear    time.Duration
	startupTime   time.Time
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps handlerDeps) *routeHandlers {
	pages := newPageHandler(deps.state, deps.renderer, deps.sessions, deps.flashClear)
	return &routeHandlers{
		healthHandler:  newHealthHandler(deps.startupTime),
		pageHandler:    pages,
		adminHandler:   newAdminHandler(deps.state, pages, deps.notifier, deps.maxImageBytes),
		projectHandler: newProjectHandler(deps.state, deps.maxImageBytes),
		authHandler:    newAuthHandler(deps.state, deps.tokens, deps.notifier),
	}
}

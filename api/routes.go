package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/site"
)

// setupPageRoutes wires the HTML views: public pages, login, and the session-gated admin panel
func setupPageRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())

		r.Get("/", handlers.pageHandler.root())
		r.Get("/frontend", handlers.pageHandler.portfolio(site.PageFrontend))
		r.Get("/ux-design", handlers.pageHandler.portfolio(site.PageUXDesign))
		r.Get("/about", handlers.pageHandler.about())

		r.Get("/admin/login", handlers.adminHandler.loginForm())
		r.Post("/admin/login", handlers.adminHandler.login())
		r.Post("/admin/logout", handlers.adminHandler.logout())

		r.Group(func(r chi.Router) {
			r.Use(handlers.adminHandler.requireSession)

			r.Get("/admin", handlers.adminHandler.dashboard())
			r.Get("/admin/projects/new", handlers.adminHandler.newProject())
			r.Post("/admin/projects", handlers.adminHandler.createProject())
			r.Post("/admin/projects/reorder", handlers.adminHandler.reorderProjects())
			r.Get("/admin/projects/{projectID}/edit", handlers.adminHandler.editProject())
			r.Post("/admin/projects/{projectID}", handlers.adminHandler.updateProject())
			r.Get("/admin/projects/{projectID}/delete", handlers.adminHandler.confirmDelete())
			r.Post("/admin/projects/{projectID}/delete", handlers.adminHandler.deleteProject())
			r.Post("/admin/password", handlers.adminHandler.changePassword())
		})
	})
}

// setupAPIRoutes wires the JSON API; mutations require a bearer token from /api/login
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/tags", handlers.projectHandler.getTags())
		r.Post("/login", handlers.authHandler.login())

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/order", handlers.projectHandler.reorderProjects())
			r.Post("/projects/move", handlers.projectHandler.moveProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
			r.Put("/password", handlers.authHandler.changePassword())
		})
	})
}

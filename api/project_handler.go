package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/catalog"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/site"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	state     *site.State
	// maxBodyBytes leaves room for a base64 image inside the JSON body
	maxBodyBytes int64
}

func newProjectHandler(state *site.State, maxImageBytes int64) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		state:        state,
		maxBodyBytes: maxImageBytes/3*4 + maxJSONBytes,
	}
}

// getAllProjects lists the catalog through the public filter pipeline
// GET /api/projects?type=Frontend&q=react&tag=Dashboard&sort=title-asc
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		projectType := models.ProjectType(params.Get("type"))
		if projectType != "" && !projectType.Valid() {
			h.responder.WriteError(w, errs.NewValidationError(errs.ErrInvalidProjectType, "type"))
			return
		}

		projects := h.state.Query(catalog.Query{
			Type:   projectType,
			Search: params.Get("q"),
			Tags:   params["tag"],
			Sort:   catalog.ParseSortOrder(params.Get("sort")),
		})

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
			Tags:     h.state.Tags(),
		})
	}
}

// getProject retrieves a specific project by ID
// GET /api/projects/{projectID}
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")

		project, ok := h.state.Project(projectID)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// getTags returns the tag facet of the whole catalog
func (h projectHandler) getTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.state.Tags())
	}
}

// createProject prepends a new project; the server assigns id and date
// POST /api/projects
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.decodeProject(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.state.CreateProject(r.Context(), project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("subject", ctxGetSubject(r.Context())).Str("projectID", created.ID).Msg("project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// updateProject replaces a project in place, keeping its id and date
// PUT /api/projects/{projectID}
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")

		project, err := h.decodeProject(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.state.UpdateProject(r.Context(), projectID, project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("subject", ctxGetSubject(r.Context())).Str("projectID", projectID).Msg("project updated")
		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject removes a project
// DELETE /api/projects/{projectID}
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")

		if err := h.state.DeleteProject(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("subject", ctxGetSubject(r.Context())).Str("projectID", projectID).Msg("project deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

// moveProject moves the project at index from so that it lands at index to
// POST /api/projects/move
func (h projectHandler) moveProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MoveRequest
		if err := decodeJSON(w, r, maxJSONBytes, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.From == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("from"))
			return
		}
		if req.To == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("to"))
			return
		}

		if err := h.state.MoveProject(r.Context(), *req.From, *req.To); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.state.Projects())
	}
}

// reorderProjects sets the canonical order from a full list of ids
// PUT /api/projects/order
func (h projectHandler) reorderProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OrderRequest
		if err := decodeJSON(w, r, maxJSONBytes, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.state.ReorderProjects(r.Context(), req.IDs); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.state.Projects())
	}
}

func (h projectHandler) decodeProject(w http.ResponseWriter, r *http.Request) (models.Project, error) {
	var payload ProjectPayload
	if err := decodeJSON(w, r, h.maxBodyBytes, &payload); err != nil {
		return models.Project{}, err
	}
	if strings.HasPrefix(payload.ImageURL, "data:") && !strings.HasPrefix(payload.ImageURL, "data:image/") {
		return models.Project{}, errs.NewValidationError(errs.ErrNotAnImage, "imageUrl")
	}
	return payload.draft().Build()
}

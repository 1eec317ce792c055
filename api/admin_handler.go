package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site/catalog"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/site"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const passwordUpdatedFlash = "Password updated successfully"

// adminHandler serves the session-gated HTML admin panel
type adminHandler struct {
	pages         pageHandler
	logger        zerolog.Logger
	state         *site.State
	notifier      services.PasswordChangeNotifier
	maxImageBytes int64
}

func newAdminHandler(state *site.State, pages pageHandler, notifier services.PasswordChangeNotifier, maxImageBytes int64) adminHandler {
	return adminHandler{
		pages:         pages,
		logger:        log.With().Str("handlerName", "adminHandler").Logger(),
		state:         state,
		notifier:      notifier,
		maxImageBytes: maxImageBytes,
	}
}

// requireSession sends visitors without the session flag to the login page
func (h adminHandler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.pages.sessions.loggedIn(r) {
			http.Redirect(w, r, site.PageAdminLogin.Path(), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h adminHandler) loginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.pages.redirectIfAdmin(w, r, site.PageAdminLogin) {
			return
		}
		h.pages.render(w, r, http.StatusOK, views.PageLogin, site.PageAdminLogin, views.PageData{Title: "Admin Login"})
	}
}

// login sets the session flag when the password matches; otherwise the form is shown again
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := h.state.Authenticate(r.Context(), r.PostFormValue("password")); err != nil {
			recordLoginAttempt("form", false)
			h.pages.render(w, r, http.StatusUnauthorized, views.PageLogin, site.PageAdminLogin, views.PageData{
				Title: "Admin Login",
				Error: inlineError(err),
			})
			return
		}
		recordLoginAttempt("form", true)

		if err := h.pages.sessions.setLoggedIn(w, r, true); err != nil {
			h.serverError(w, err)
			return
		}
		http.Redirect(w, r, site.PageAdmin.Path(), http.StatusSeeOther)
	}
}

func (h adminHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.pages.sessions.setLoggedIn(w, r, false); err != nil {
			h.serverError(w, err)
			return
		}
		http.Redirect(w, r, site.PageFrontend.Path(), http.StatusSeeOther)
	}
}

func (h adminHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderDashboard(w, r, http.StatusOK, "")
	}
}

func (h adminHandler) newProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderForm(w, r, http.StatusOK, "", site.NewDraft(), "")
	}
}

func (h adminHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, err := h.parseDraft(w, r)
		if err == nil {
			var project models.Project
			if project, err = draft.Build(); err == nil {
				_, err = h.state.CreateProject(r.Context(), project)
			}
		}
		if err != nil {
			h.formError(w, r, "", draft, err)
			return
		}
		http.Redirect(w, r, site.PageAdmin.Path(), http.StatusSeeOther)
	}
}

func (h adminHandler) editProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.state.Project(chi.URLParam(r, "projectID"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.renderForm(w, r, http.StatusOK, project.ID, site.DraftFrom(project), "")
	}
}

func (h adminHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if _, ok := h.state.Project(projectID); !ok {
			http.NotFound(w, r)
			return
		}

		draft, err := h.parseDraft(w, r)
		if err == nil {
			var project models.Project
			if project, err = draft.Build(); err == nil {
				_, err = h.state.UpdateProject(r.Context(), projectID, project)
			}
		}
		if errs.IsNotFound(err) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			h.formError(w, r, projectID, draft, err)
			return
		}
		http.Redirect(w, r, site.PageAdmin.Path(), http.StatusSeeOther)
	}
}

func (h adminHandler) confirmDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.state.Project(chi.URLParam(r, "projectID"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.pages.render(w, r, http.StatusOK, views.PageConfirmDelete, site.PageAdmin, views.PageData{
			Title:   "Delete Project",
			Project: project,
		})
	}
}

// deleteProject only deletes when the confirmation field is present; any other post is a no-op
func (h adminHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.PostFormValue("confirm") == "yes" {
			err := h.state.DeleteProject(r.Context(), chi.URLParam(r, "projectID"))
			if err != nil && !errs.IsNotFound(err) {
				h.serverError(w, err)
				return
			}
		}
		http.Redirect(w, r, site.PageAdmin.Path(), http.StatusSeeOther)
	}
}

// reorderProjects replays a finished drag: the source row was dropped on the hovered row
func (h adminHandler) reorderProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		source, sourceErr := strconv.Atoi(r.PostFormValue("source"))
		hover, hoverErr := strconv.Atoi(r.PostFormValue("hover"))
		if sourceErr != nil || hoverErr != nil {
			h.renderDashboard(w, r, http.StatusBadRequest, errs.ErrInvalidMove.Error())
			return
		}

		var drag catalog.DragState
		drag.Start(source)
		drag.Hover(hover)
		if from, to, ok := drag.Release(); ok {
			if err := h.state.MoveProject(r.Context(), from, to); err != nil {
				h.renderDashboard(w, r, http.StatusBadRequest, inlineError(err))
				return
			}
		}
		http.Redirect(w, r, site.PageAdmin.Path(), http.StatusSeeOther)
	}
}

func (h adminHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h.state.ChangePassword(r.Context(), r.PostFormValue("newPassword"), r.PostFormValue("confirmPassword"))
		if err != nil {
			h.renderDashboard(w, r, http.StatusBadRequest, inlineError(err))
			return
		}

		notifyPasswordChanged(h.logger, h.notifier)
		if err := h.pages.sessions.addFlash(w, r, passwordUpdatedFlash); err != nil {
			h.logger.Warn().Err(err).Msg("flash not saved")
		}
		http.Redirect(w, r, site.PageAdmin.Path(), http.StatusSeeOther)
	}
}

// parseDraft reads the project form. The image comes from, in priority order, an uploaded file,
// the URL field, or the data URI already attached to the draft. removeImage drops the last two.
func (h adminHandler) parseDraft(w http.ResponseWriter, r *http.Request) (site.ProjectDraft, error) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*h.maxImageBytes+maxJSONBytes)
	if err := r.ParseMultipartForm(h.maxImageBytes + maxJSONBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return site.NewDraft(), errs.NewValidationError(errs.ErrImageTooLarge, "imageFile")
		}
		return site.NewDraft(), errs.NewMalformedPayloadError("project form", err)
	}

	draft := site.ProjectDraft{
		Title:      r.PostFormValue("title"),
		Type:       r.PostFormValue("type"),
		ImageURL:   strings.TrimSpace(r.PostFormValue("imageUrl")),
		Duration:   r.PostFormValue("duration"),
		Difficulty: r.PostFormValue("difficulty"),
		Outcome:    r.PostFormValue("outcome"),
		StackText:  r.PostFormValue("stack"),
		TagsText:   r.PostFormValue("tags"),
	}
	if data := r.PostFormValue("imageData"); draft.ImageURL == "" && strings.HasPrefix(data, "data:image/") {
		draft.ImageURL = data
	}
	if r.PostFormValue("removeImage") == "yes" {
		draft.ImageURL = ""
	}

	file, _, err := r.FormFile("imageFile")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return draft, nil
	case err != nil:
		return draft, errs.NewMalformedPayloadError("image", err)
	}
	defer file.Close()
	return draft, draft.AttachImage(file, h.maxImageBytes)
}

// formError re-renders the form with the admin's input and an inline message
func (h adminHandler) formError(w http.ResponseWriter, r *http.Request, projectID string, draft site.ProjectDraft, err error) {
	message := inlineError(err)
	if message == "" {
		h.serverError(w, err)
		return
	}
	h.renderForm(w, r, http.StatusBadRequest, projectID, draft, message)
}

func (h adminHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, projectID string, draft site.ProjectDraft, message string) {
	form := views.Form{
		Editing:      projectID != "",
		Action:       "/admin/projects",
		Draft:        draft,
		Types:        typeOptions(draft.Type),
		Difficulties: difficultyOptions(draft.Difficulty),
	}
	title := "Add Project"
	if form.Editing {
		form.Action = "/admin/projects/" + projectID
		title = "Edit Project"
	}
	h.pages.render(w, r, status, views.PageProjectForm, site.PageAdmin, views.PageData{
		Title: title,
		Form:  form,
		Error: message,
	})
}

func (h adminHandler) renderDashboard(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.pages.render(w, r, status, views.PageDashboard, site.PageAdmin, views.PageData{
		Title:     "Admin",
		Dashboard: views.Dashboard{Projects: h.state.Projects()},
		Error:     message,
	})
}

func (h adminHandler) serverError(w http.ResponseWriter, err error) {
	h.logger.Error().Err(err).Msg("admin request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// inlineError is the message shown next to a form; client errors without a dedicated message fall
// back to their generic text
func inlineError(err error) string {
	if message := errs.InlineMessage(err); message != "" {
		return message
	}
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		return apiErr.Error()
	}
	return ""
}

func typeOptions(selected string) []views.Option {
	options := make([]views.Option, 0, len(models.ProjectTypes))
	for _, t := range models.ProjectTypes {
		options = append(options, views.Option{Value: string(t), Label: string(t), Selected: string(t) == selected})
	}
	return options
}

func difficultyOptions(selected string) []views.Option {
	options := make([]views.Option, 0, len(models.Difficulties))
	for _, d := range models.Difficulties {
		options = append(options, views.Option{Value: string(d), Label: string(d), Selected: string(d) == selected})
	}
	return options
}

package api

import (
	"time"

	"github.com/rpupo63/portfolio-site/catalog"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/site"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler  healthHandler
	pageHandler    pageHandler
	adminHandler   adminHandler
	projectHandler projectHandler
	authHandler    authHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// ProjectCollection is the filtered catalog plus the tag facet of the whole catalog
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
	Tags     []string         `json:"tags"`
}

// ProjectPayload is the body of create and update requests. Id and date are assigned by the server.
type ProjectPayload struct {
	Title      string   `json:"title"`
	Type       string   `json:"type"`
	ImageURL   string   `json:"imageUrl"`
	Duration   string   `json:"duration"`
	Difficulty string   `json:"difficulty"`
	Outcome    string   `json:"outcome"`
	Stack      []string `json:"stack"`
	Tags       []string `json:"tags"`
}

func (p ProjectPayload) draft() site.ProjectDraft {
	return site.ProjectDraft{
		Title:      p.Title,
		Type:       p.Type,
		ImageURL:   p.ImageURL,
		Duration:   p.Duration,
		Difficulty: p.Difficulty,
		Outcome:    p.Outcome,
		StackText:  catalog.JoinList(p.Stack),
		TagsText:   catalog.JoinList(p.Tags),
	}
}

type MoveRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

type OrderRequest struct {
	IDs []string `json:"ids"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type PasswordRequest struct {
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

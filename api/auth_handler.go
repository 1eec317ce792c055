package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/site"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	state     *site.State
	tokens    tokenIssuer
	notifier  services.PasswordChangeNotifier
}

func newAuthHandler(state *site.State, tokens tokenIssuer, notifier services.PasswordChangeNotifier) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		state:     state,
		tokens:    tokens,
		notifier:  notifier,
	}
}

// login exchanges the admin password for a bearer token
// POST /api/login
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(w, r, maxJSONBytes, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.state.Authenticate(r.Context(), req.Password); err != nil {
			recordLoginAttempt("api", false)
			h.responder.WriteError(w, err)
			return
		}
		recordLoginAttempt("api", true)

		token, expiresAt, err := h.tokens.Issue()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, LoginResponse{Token: token, ExpiresAt: expiresAt})
	}
}

// changePassword replaces the admin password
// PUT /api/password
func (h authHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PasswordRequest
		if err := decodeJSON(w, r, maxJSONBytes, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.state.ChangePassword(r.Context(), req.NewPassword, req.ConfirmPassword); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		notifyPasswordChanged(h.logger, h.notifier)
		w.WriteHeader(http.StatusNoContent)
	}
}

// notifyPasswordChanged sends the notification in the background; failures are only logged.
func notifyPasswordChanged(logger zerolog.Logger, notifier services.PasswordChangeNotifier) {
	at := time.Now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := notifier.NotifyPasswordChanged(ctx, at); err != nil {
			logger.Warn().Err(err).Msg("password change notification failed")
		}
	}()
}

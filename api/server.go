package api

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/services"
	"github.com/rpupo63/portfolio-site/site"
	"github.com/rpupo63/portfolio-site/views"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(state *site.State, c map[string]string) (Server, error) {
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	renderer, err := views.NewRenderer()
	if err != nil {
		return Server{}, err
	}

	router, err := newRouter(state, renderer, withConfig(c), withStartupTime(startupTime))
	if err != nil {
		return Server{}, err
	}

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 180),
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180),
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180),
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(state *site.State, renderer *views.Renderer, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	c := router.config

	sessionSecret, err := secretFromConfig(c, "SESSION_SECRET")
	if err != nil {
		return nil, err
	}
	jwtSecret, err := secretFromConfig(c, "JWT_SECRET")
	if err != nil {
		return nil, err
	}

	deps := handlerDeps{
		state:    state,
		renderer: renderer,
		sessions: newSessionManager(sessionSecret, config.GetBool(c, "SESSION_SECURE", false)),
		tokens: newTokenIssuer(jwtSecret,
			time.Duration(config.GetInt(c, "JWT_TTL_MINUTES", 60))*time.Minute),
		notifier:      services.NewPasswordChangeNotifier(c),
		maxImageBytes: int64(config.GetInt(c, "MAX_IMAGE_BYTES", 5<<20)),
		flashClear:    config.GetSeconds(c, "FLASH_CLEAR_SECONDS", 3),
		startupTime:   router.startupTime,
	}
	handlers := initializeHandlers(deps)

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(PrometheusMiddleware)
	chiRouter.Use(NewSecure(SecureOptions(config.GetBool(c, "DEVELOPMENT", false))))

	acceptedOrigins := config.GetList(c, "ACCEPTED_ORIGINS")
	apiCORS := cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return originAllowed(acceptedOrigins, origin)
		},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	})

	chiRouter.Handle("/metrics", promhttp.Handler())
	chiRouter.Handle("/static/*", http.StripPrefix("/static/", views.Static()))

	setupPageRoutes(chiRouter, handlers)
	chiRouter.Route("/api", func(r chi.Router) {
		r.Use(CORSCheckMiddleware(acceptedOrigins))
		r.Use(apiCORS)
		setupAPIRoutes(r, handlers, newAuthMiddleware(deps.tokens))
	})

	return chiRouter, nil
}

// secretFromConfig returns the configured secret, or a random one that will not survive a restart.
func secretFromConfig(c map[string]string, key string) ([]byte, error) {
	if s := config.GetString(c, key, ""); s != "" {
		return []byte(s), nil
	}
	log.Warn().Str("key", key).Msg("no secret configured, generating an ephemeral one")
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	return secret, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}

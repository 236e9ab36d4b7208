// Package webui serves the local web interface: session-aware pages
// for the dashboard, profile, predictions, support, and the admin
// console, backed by the remote API.
package webui

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/edu2job/edu2job/pkg/api"
	"github.com/edu2job/edu2job/pkg/auth"
	"github.com/edu2job/edu2job/pkg/auth/oauth2"
	"github.com/edu2job/edu2job/pkg/cache"
	"github.com/edu2job/edu2job/pkg/config"
	"github.com/edu2job/edu2job/pkg/logging"
)

// Server represents the local HTTP server
type Server struct {
	config     *config.Config
	router     *chi.Mux
	manager    *auth.Manager
	apiClient  *api.Client
	cache      *cache.Cache
	google     oauth2.Provider // nil when Google sign-in is not configured
	flashes    *FlashQueue
	templates  *Templates
	logger     logging.Logger
	httpServer *http.Server
}

// New creates a new server instance. The flash queue passed in must be
// the same one wired into the auth manager as its notifier.
func New(
	cfg *config.Config,
	manager *auth.Manager,
	apiClient *api.Client,
	featureCache *cache.Cache,
	google oauth2.Provider,
	flashes *FlashQueue,
	logger logging.Logger,
) (*Server, error) {
	templates, err := newTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		config:    cfg,
		manager:   manager,
		apiClient: apiClient,
		cache:     featureCache,
		google:    google,
		flashes:   flashes,
		templates: templates,
		logger:    logger.WithModule("webui"),
	}

	s.setupRouter()
	return s, nil
}

// setupRouter configures the HTTP router
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/assets/styles.css", s.handleStylesCSS)

	r.Get("/", s.handleLanding)

	// Anonymous-only pages
	r.Group(func(r chi.Router) {
		r.Use(s.redirectAuthed)
		r.Get("/login", s.handleLoginPage)
		r.Post("/login", s.handleLoginSubmit)
		r.Get("/register", s.handleRegisterPage)
		r.Post("/register", s.handleRegisterSubmit)
		r.Get("/auth/google/start", s.handleGoogleStart)
		r.Get("/auth/google/callback", s.handleGoogleCallback)
	})

	r.Post("/logout", s.handleLogout)

	// Authenticated pages
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/profile", s.handleProfile)
		r.Post("/profile", s.handleProfileUpdate)
		r.Post("/profile/certifications", s.handleCertificationAdd)
		r.Post("/profile/certifications/{id}/delete", s.handleCertificationDelete)
		r.Get("/predictions", s.handlePredictions)
		r.Post("/predictions/run", s.handlePredictionRun)
		r.Post("/predictions/{id}/delete", s.handlePredictionDelete)
		r.Post("/predictions/{id}/feedback", s.handlePredictionFeedback)
		r.Get("/support", s.handleSupport)
		r.Post("/support", s.handleSupportCreate)
		r.Post("/support/{id}/delete", s.handleSupportDelete)
	})

	// Admin console
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Use(s.requireAdmin)
		r.Get("/admin", s.handleAdminHome)
		r.Get("/admin/users", s.handleAdminUsers)
		r.Post("/admin/users/{id}/role", s.handleAdminSetRole)
		r.Post("/admin/users/{id}/flag", s.handleAdminFlag)
		r.Post("/admin/users/{id}/unflag", s.handleAdminUnflag)
		r.Post("/admin/users/{id}/delete", s.handleAdminDeleteUser)
		r.Get("/admin/tickets", s.handleAdminTickets)
		r.Post("/admin/tickets/{id}/reply", s.handleAdminTicketReply)
		r.Post("/admin/tickets/{id}/status", s.handleAdminTicketStatus)
		r.Get("/admin/logs", s.handleAdminLogs)
		r.Get("/admin/model", s.handleAdminModel)
		r.Post("/admin/model/retrain", s.handleAdminRetrain)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.renderNotFound(w)
	})

	s.router = r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	s.logger.Info("Starting server", "address", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Router returns the chi router (for testing)
func (s *Server) Router() *chi.Mux {
	return s.router
}

// token returns the current bearer token for API calls.
func (s *Server) token() string {
	return s.manager.Token()
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/blizbi/blizbi/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/assistant.go -pkg mocks -skip-ensure -fmt goimports . Assistant
//go:generate moq -out mocks/authenticator.go -pkg mocks -skip-ensure -fmt goimports . Authenticator

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	assistant Assistant
	auth      Authenticator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations. Users are identified by the token subject (clerk id),
// bookmarks and chat history belong to the profile of the user.
type Database interface {
	GetProfile(ctx context.Context, clerkID string) (*domain.Profile, error)
	EnsureProfile(ctx context.Context, clerkID string) (*domain.Profile, error)
	UpdateInterests(ctx context.Context, clerkID string, interestIDs []string) (*domain.Profile, error)

	ListBookmarks(ctx context.Context, profileID string) ([]string, error)
	AddBookmark(ctx context.Context, profileID, eventID string) (*domain.Bookmark, error)
	RemoveBookmark(ctx context.Context, profileID, eventID string) error
	BookmarkDetails(ctx context.Context, profileID string) ([]domain.BookmarkedEvent, error)

	GetConsent(ctx context.Context, userID string) (*domain.ConsentRecord, error)
	UpsertConsent(ctx context.Context, rec domain.ConsentRecord) error
	DeleteConsent(ctx context.Context, userID string) error

	ChatHistory(ctx context.Context, profileID string) ([]domain.Message, error)
	AppendChatHistory(ctx context.Context, profileID string, msgs ...domain.Message) error
	ClearChatHistory(ctx context.Context, profileID string) error

	DeleteUserData(ctx context.Context, clerkID, collection string) error

	SearchEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	GetProvider(ctx context.Context, id string) (*domain.Provider, error)
	ImportStatus(ctx context.Context) ([]domain.ImportStatus, error)
	ListInterests(ctx context.Context) ([]domain.Interest, error)

	// catalog management, admin only
	CreateEvent(ctx context.Context, ev *domain.Event) error
	UpdateEvent(ctx context.Context, ev *domain.Event) error
	DeleteEvent(ctx context.Context, id string) error
	CreateProvider(ctx context.Context, p *domain.Provider) error
	UpdateProvider(ctx context.Context, p *domain.Provider) error
	DeleteProvider(ctx context.Context, id string) error
	CreateInterest(ctx context.Context, in *domain.Interest) error
	Dashboard(ctx context.Context, today string) (*domain.Dashboard, error)
}

// Assistant answers chat messages with event suggestions
type Assistant interface {
	Answer(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error)
}

// Authenticator verifies identity tokens
type Authenticator interface {
	Verify(token string) (domain.User, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, assistant Assistant, auth Authenticator, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		assistant: assistant,
		auth:      auth,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the router, used to serve the API from tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("blizbi", "blizbi", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// chat endpoint, no authentication
	s.router.HandleFunc("POST /chat", s.chatHandler)

	// rss feeds of upcoming events
	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /rss/{providerID}", s.rssHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		// public catalog
		r.HandleFunc("GET /events", s.listEventsHandler)
		r.HandleFunc("GET /events/{id}", s.getEventHandler)
		r.HandleFunc("GET /providers", s.listProvidersHandler)
		r.HandleFunc("GET /providers/{id}", s.getProviderHandler)
		r.HandleFunc("GET /ingest", s.importStatusHandler)
		r.HandleFunc("GET /interests", s.listInterestsHandler)

		// user data, bearer token required
		r.Group().Route(func(auth *routegroup.Bundle) {
			auth.Use(s.authMiddleware)

			auth.HandleFunc("GET /profile", s.getProfileHandler)
			auth.HandleFunc("POST /profile", s.ensureProfileHandler)
			auth.HandleFunc("PUT /profile/interests", s.updateInterestsHandler)

			auth.HandleFunc("GET /profiles/{profileID}/bookmarks", s.listBookmarksHandler)
			auth.HandleFunc("GET /profiles/{profileID}/bookmarks/details", s.bookmarkDetailsHandler)
			auth.HandleFunc("POST /profiles/{profileID}/bookmarks/{eventID}", s.addBookmarkHandler)
			auth.HandleFunc("DELETE /profiles/{profileID}/bookmarks/{eventID}", s.removeBookmarkHandler)

			auth.HandleFunc("GET /consent", s.getConsentHandler)
			auth.HandleFunc("PUT /consent", s.putConsentHandler)
			auth.HandleFunc("DELETE /consent", s.deleteConsentHandler)

			auth.HandleFunc("GET /chat/history", s.getChatHistoryHandler)
			auth.HandleFunc("POST /chat/history", s.appendChatHistoryHandler)
			auth.HandleFunc("DELETE /chat/history", s.clearChatHistoryHandler)

			auth.HandleFunc("DELETE /data/{collection}", s.deleteUserDataHandler)
		})

		// catalog management, bearer token with the admin claim required
		r.Group().Route(func(admin *routegroup.Bundle) {
			admin.Use(s.authMiddleware, s.adminMiddleware)

			admin.HandleFunc("GET /dashboard", s.dashboardHandler)

			admin.HandleFunc("POST /events", s.createEventHandler)
			admin.HandleFunc("PUT /events/{id}", s.updateEventHandler)
			admin.HandleFunc("DELETE /events/{id}", s.deleteEventHandler)

			admin.HandleFunc("POST /providers", s.createProviderHandler)
			admin.HandleFunc("PUT /providers/{id}", s.updateProviderHandler)
			admin.HandleFunc("DELETE /providers/{id}", s.deleteProviderHandler)

			admin.HandleFunc("POST /interests", s.createInterestHandler)
		})
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

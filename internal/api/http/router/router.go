package router

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/asconalumni/alumni-server/internal/api/http/handler"
	"github.com/asconalumni/alumni-server/internal/api/http/middleware"
	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/metrics"
	"github.com/asconalumni/alumni-server/internal/model"
)

// Services groups the operations exposed over HTTP.
type Services struct {
	Auth      handler.AuthService
	Reset     handler.ResetService
	Profile   handler.ProfileService
	Directory handler.DirectoryService
	Admin     handler.AdminService
	Content   handler.ContentService
	Tokens    middleware.TokenVerifier
}

// Options holds transport limits and CORS settings.
type Options struct {
	AllowedOrigins []string
	MaxUploadBytes int64
	MaxBodyBytes   int64
}

// Router builds the HTTP API of the alumni service.
type Router struct {
	services       Services
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	options        Options
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	services Services,
	contextManager model.ContextManager,
	metrics *metrics.Metrics,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		metrics:        metrics,
		options:        options,
		logger:         logger,
	}
}

// Register wires routes and middleware and returns the root handler.
//
// Gates:
//   - public: auth endpoints and content listings
//   - authenticated: profile and directory
//   - admin: account listings, view-only admins included
//   - editor: every mutation of content or accounts
func (r *Router) Register() http.Handler {
	authHandler := handler.NewAuth(r.services.Auth, r.services.Reset, r.metrics, r.logger)
	profileHandler := handler.NewProfile(r.services.Profile, r.services.Directory, r.contextManager, r.options.MaxUploadBytes, r.logger)
	adminHandler := handler.NewAdmin(r.services.Admin, r.contextManager, r.logger)
	contentHandler := handler.NewContent(r.services.Content, r.logger)

	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger)
	authorize := middleware.NewAuthorize(r.contextManager, r.logger)

	root := mux.NewRouter()
	root.Use(
		middleware.NewRecovery(r.logger).Handle,
		middleware.NewLogging(r.logger).Handle,
		middleware.NewMetrics(r.metrics).Handle,
	)

	root.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)
	root.HandleFunc("/healthz", healthz).Methods(http.MethodGet)

	api := root.PathPrefix("/api").Subrouter()
	api.Use(middleware.NewMaxBytes(r.options.MaxBodyBytes).Handle)

	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/oauth", authHandler.OAuth).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", authHandler.ForgotPassword).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", authHandler.ResetPassword).Methods(http.MethodPost)
	api.HandleFunc("/events", contentHandler.ListEvents).Methods(http.MethodGet)
	api.HandleFunc("/programmes", contentHandler.ListProgrammes).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(authenticate.Handle)

	authed.HandleFunc("/profile/me", profileHandler.Me).Methods(http.MethodGet)
	authed.HandleFunc("/profile/update", profileHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/directory", profileHandler.Directory).Methods(http.MethodGet)

	admin := authed.NewRoute().Subrouter()
	admin.Use(authorize.RequireAdmin)

	admin.HandleFunc("/admin/users", adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/admin/pending", adminHandler.ListPending).Methods(http.MethodGet)

	editor := authed.NewRoute().Subrouter()
	editor.Use(authorize.RequireEditor)

	editor.HandleFunc("/admin/verify/{id}", adminHandler.Verify).Methods(http.MethodPut)
	editor.HandleFunc("/admin/users/{id}/toggle-admin", adminHandler.ToggleAdmin).Methods(http.MethodPut)
	editor.HandleFunc("/admin/users/{id}/toggle-edit", adminHandler.ToggleEdit).Methods(http.MethodPut)
	editor.HandleFunc("/admin/users/{id}", adminHandler.DeleteUser).Methods(http.MethodDelete)

	editor.HandleFunc("/events", contentHandler.CreateEvent).Methods(http.MethodPost)
	editor.HandleFunc("/events/{id}", contentHandler.UpdateEvent).Methods(http.MethodPut)
	editor.HandleFunc("/events/{id}", contentHandler.DeleteEvent).Methods(http.MethodDelete)
	editor.HandleFunc("/programmes", contentHandler.CreateProgramme).Methods(http.MethodPost)
	editor.HandleFunc("/programmes/{id}", contentHandler.UpdateProgramme).Methods(http.MethodPut)
	editor.HandleFunc("/programmes/{id}", contentHandler.DeleteProgramme).Methods(http.MethodDelete)

	return middleware.NewCORS(r.options.AllowedOrigins).Handle(root)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

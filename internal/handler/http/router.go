package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/config"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/auth"
	"github.com/massimocristi1970/hr-dashboard/internal/handler/http/middleware"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	admins auth.AdminSet,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	fileHandler FileHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-dashboard"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-Email"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/api/health"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/login/google", authHandler.LoginWithGoogle)
			r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
		})

		// Requires an identity
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.Identity(admins, cfg.App.DevImpersonation))

			r.Get("/me", authHandler.Me)

			r.Route("/leave", func(r chi.Router) {
				r.Get("/my-requests", leaveHandler.MyRequests)
				r.Post("/request", leaveHandler.Submit)
				r.Get("/pending", leaveHandler.Pending)
				r.Get("/{id}/warnings", leaveHandler.Warnings)
				r.Put("/{id}/approve", leaveHandler.Approve)
				r.Put("/{id}/decline", leaveHandler.Decline)
				r.Put("/{id}/cancel", leaveHandler.Cancel)
			})

			r.Route("/files", func(r chi.Router) {
				r.Get("/my-files", fileHandler.MyFiles)
				r.Post("/upload", fileHandler.Upload)
				r.Delete("/{id}", fileHandler.Delete)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/employees", adminHandler.ListEmployees)
				r.Post("/employees", adminHandler.UpsertEmployee)

				r.Post("/entitlements", adminHandler.SetEntitlement)
				r.Get("/entitlements/summary", adminHandler.EntitlementSummary)

				r.Get("/all-requests", adminHandler.AllRequests)

				r.Route("/blocked-days", func(r chi.Router) {
					r.Get("/", adminHandler.ListBlockedDays)
					r.Post("/", adminHandler.AddBlockedDay)
					r.Delete("/{id}", adminHandler.RemoveBlockedDay)
				})
			})
		})
	})

	return r
}

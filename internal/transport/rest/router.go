package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/bomberosvinadelmar/portal-admin/internal/auth"
	"github.com/bomberosvinadelmar/portal-admin/internal/citation"
	"github.com/bomberosvinadelmar/portal-admin/internal/permission"
	"github.com/bomberosvinadelmar/portal-admin/internal/personnel"
	"github.com/bomberosvinadelmar/portal-admin/internal/registration"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
	"github.com/bomberosvinadelmar/portal-admin/internal/transport/middleware"
	"github.com/bomberosvinadelmar/portal-admin/internal/transport/swagger"
	"github.com/bomberosvinadelmar/portal-admin/internal/video"
)

// Handlers bundles every mounted handler for route registration.
type Handlers struct {
	Auth         *auth.Handler
	Permission   *permission.Handler
	Personnel    *personnel.Handler
	Citation     *citation.Handler
	Video        *video.Handler
	Registration *registration.Handler
}

// RegisterAllRoutes wires the portal API. Module routes sit behind the
// auth middleware plus a per-module permission gate; the permission
// administration routes additionally require the administrator role.
func RegisterAllRoutes(router *chi.Mux, st storage.Store, handlers Handlers, modAuth *auth.ModuleAuthorization, logger *slog.Logger) {
	healthHandler := NewHealthHandler(st)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", handlers.Auth.Login)
			sr.Post("/refresh", handlers.Auth.RefreshToken)
			sr.Post("/logout", handlers.Auth.Logout)
		})

		// Applicants have no session yet.
		r.Post("/registrations", handlers.Registration.Submit)

		r.Group(func(pr chi.Router) {
			pr.Use(handlers.Auth.AuthMiddleware)

			pr.Get("/session", handlers.Auth.Session)

			pr.Group(func(mr chi.Router) {
				mr.Use(modAuth.RequireModule(roles.ModulePersonal))
				mr.Get("/personnel", handlers.Personnel.List)
				mr.Get("/personnel/{id}", handlers.Personnel.Get)
				mr.Post("/personnel", handlers.Personnel.Create)
				mr.Put("/personnel/{id}", handlers.Personnel.Update)
				mr.Patch("/personnel/{id}/deactivate", handlers.Personnel.Deactivate)
			})

			pr.Group(func(mr chi.Router) {
				mr.Use(modAuth.RequireModule(roles.ModuleCitaciones))
				mr.Get("/citations", handlers.Citation.List)
				mr.Get("/citations/{id}", handlers.Citation.Get)
				mr.Post("/citations", handlers.Citation.Create)
				mr.Delete("/citations/{id}", handlers.Citation.Delete)
			})

			pr.Group(func(mr chi.Router) {
				mr.Use(modAuth.RequireModule(roles.ModuleVideos))
				mr.Get("/videos", handlers.Video.List)
				mr.Get("/videos/{id}", handlers.Video.Get)
				mr.Post("/videos", handlers.Video.Create)
				mr.Delete("/videos/{id}", handlers.Video.Delete)
			})

			pr.Group(func(mr chi.Router) {
				mr.Use(modAuth.RequireModule(roles.ModuleAdministracion))
				mr.Get("/registrations", handlers.Registration.List)
				mr.Get("/registrations/{id}", handlers.Registration.Get)
			})

			pr.Group(func(ar chi.Router) {
				ar.Use(modAuth.RequireAdministrator())
				ar.Patch("/registrations/{id}/approve", handlers.Registration.Approve)
				ar.Patch("/registrations/{id}/reject", handlers.Registration.Reject)
				ar.Patch("/registrations/{id}/request-info", handlers.Registration.RequestInfo)
				ar.Patch("/registrations/{id}/suspend", handlers.Registration.Suspend)
				ar.Patch("/registrations/{id}/resume", handlers.Registration.Resume)
			})

			pr.Group(func(ar chi.Router) {
				ar.Use(modAuth.RequireModule(roles.ModulePermisos))
				ar.Get("/permissions", handlers.Permission.GetTable)
				ar.Get("/permissions/role", handlers.Permission.GetRole)
				ar.Put("/permissions", handlers.Permission.UpdateRole)
				ar.Post("/permissions/reset", handlers.Permission.Reset)
			})
		})
	})
}

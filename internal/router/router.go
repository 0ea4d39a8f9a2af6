package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/laticiniossantana/notabase/internal/auth"
	"github.com/laticiniossantana/notabase/internal/handler"
	mw "github.com/laticiniossantana/notabase/internal/middleware"
)

func New(
	jwtSecret string,
	corsOrigin string,
	authH *handler.AuthHandler,
	docH *handler.DocumentHandler,
	reportH *handler.ReportHandler,
	exportH *handler.ExportHandler,
	userH *handler.UserHandler,
	formH *handler.FormConfigHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(corsOrigin))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/login", authH.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(jwtSecret))

			// Auth
			r.Get("/auth/me", authH.Me)

			// Dashboard
			r.Get("/dashboard", reportH.Dashboard)

			// Upload form configuration (read-only view)
			r.Get("/form-config", formH.Get)

			// Documents
			r.Get("/documents", docH.List)
			r.Post("/documents", docH.Upload)
			r.Get("/documents/{docId}/download", docH.Download)
			r.Delete("/documents/{docId}", docH.Delete)

			// Reports
			r.Get("/reports", reportH.Reports)

			// Exports
			r.Get("/exports/csv", exportH.CSV)
			r.Get("/exports/html", exportH.HTML)
			r.Get("/exports/xlsx", exportH.XLSX)

			// Admin routes
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				r.Get("/admin/stats", reportH.AdminStats)

				r.Get("/admin/users", userH.List)
				r.Post("/admin/users", userH.Create)
				r.Put("/admin/users/{userId}", userH.Update)
				r.Delete("/admin/users/{userId}", userH.Delete)

				r.Put("/admin/form-config", formH.Put)
				r.Patch("/admin/form-config", formH.Patch)
				r.Delete("/admin/form-config", formH.Delete)
			})
		})
	})

	return r
}

package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/coursedeck/coursedeck-api/internal/api"
	apiMiddleware "github.com/coursedeck/coursedeck-api/internal/api/middleware"
	"github.com/coursedeck/coursedeck-api/internal/api/shared"
	"github.com/coursedeck/coursedeck-api/internal/config"
	"github.com/coursedeck/coursedeck-api/internal/platform/postgres"
	"github.com/coursedeck/coursedeck-api/internal/service/auth"
)

// newRouter creates and configures the application router with all routes
// and middleware.
func newRouter(cfg *config.Config, db *sql.DB, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Stores and services
	userStore := postgres.NewPostgresUserStore(db, log)
	courseStore := postgres.NewPostgresCourseStore(db, log)
	passwords := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)

	// Handlers
	userHandler := api.NewUserHandler(userStore, passwords, log)
	courseHandler := api.NewCourseHandler(courseStore, log)
	authMiddleware := apiMiddleware.NewAuthMiddleware(userStore, passwords, log)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
				"message": "Welcome to the courses API",
			})
		})

		// User endpoints; registration is public, read-self is not
		r.Post("/users", api.Handler(userHandler.Register))
		r.With(authMiddleware.Authenticate).
			Get("/users", api.Handler(userHandler.GetCurrentUser))

		// Course reads are public
		r.Get("/courses", api.Handler(courseHandler.ListCourses))
		r.Get("/courses/{id}", api.Handler(courseHandler.GetCourse))

		// Course mutations require credentials; update and delete also
		// require ownership, enforced in the handlers after lookup
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/courses", api.Handler(courseHandler.CreateCourse))
			r.Put("/courses/{id}", api.Handler(courseHandler.UpdateCourse))
			r.Delete("/courses/{id}", api.Handler(courseHandler.DeleteCourse))
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

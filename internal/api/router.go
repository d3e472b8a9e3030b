package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bloggydev/bloggy/internal/api/handlers"
	"github.com/bloggydev/bloggy/internal/api/middleware"
	"github.com/bloggydev/bloggy/internal/service"
)

func NewRouter(services *service.Services, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chiMiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	userHandler := handlers.NewUserHandler(services.User)
	postHandler := handlers.NewPostHandler(services.Blog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/login", userHandler.Login)

		r.Route("/blog-posts", func(r chi.Router) {
			r.Get("/", postHandler.List)
			r.Get("/{id}", postHandler.Get)

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Tokens))
				r.Post("/", postHandler.Create)
			})
		})
	})

	return r
}

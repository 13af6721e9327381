package app

import (
	"github.com/avc-dev/url-registry/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func newRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	h := deps.handler
	auth := deps.auth

	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))

	r.Get("/", h.Root)
	r.Get("/ping", h.Ping)
	r.Get("/list_urls", h.ListURLs)
	r.Get("/redirect/{code}", h.Redirect)
	r.Get("/redirect/", h.Redirect)

	r.With(auth.OptionalAuth).Post("/shorten_url", h.ShortenURL)
	r.With(auth.RequireAuth).Delete("/delete_url/{code}", h.DeleteURL)

	r.Route("/users", func(r chi.Router) {
		r.Post("/token", h.Token)
		r.Post("/create_user", h.CreateUser)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)
			r.Get("/me", h.Me)
			r.Post("/change_password", h.ChangePassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Get("/list_all_users", h.ListUsers)
			r.Post("/update_url_limit", h.UpdateURLLimit)
			r.Delete("/{username}", h.DeleteUser)
		})
	})

	return r
}

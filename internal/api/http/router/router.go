// Package router wires the resource handlers into the route table. Every
// route declares its exposure explicitly by the group it is registered in;
// there is no pattern matching on paths.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/temirov/blogapi/internal/api/http/handler"
	"github.com/temirov/blogapi/internal/api/http/middleware"
)

type Handlers struct {
	Auth     *handler.Auth
	User     *handler.User
	Article  *handler.Article
	PageView *handler.PageView
	Health   *handler.Health
}

// New builds the chi mux with the full route table.
func New(h Handlers, gate *middleware.Authenticate, logging *middleware.Logging) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.Recoverer)
	mux.Use(logging.Handle)

	mux.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", h.Health.Index)

		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/refresh", h.Auth.Refresh)

		// Public reads: anonymous allowed, a supplied token must verify.
		r.Group(func(r chi.Router) {
			r.Use(gate.Public)

			r.Get("/articles", h.Article.GetAll)
			r.Get("/articles/{id}", h.Article.GetByID)
			r.Get("/users", h.User.GetAll)
			r.Get("/users/{id}", h.User.GetByID)
		})

		// Everything else requires a verified access token.
		r.Group(func(r chi.Router) {
			r.Use(gate.Protected)

			r.Post("/auth/logout", h.Auth.Logout)

			r.Post("/users", h.User.Create)
			r.Patch("/users/{id}", h.User.Update)
			r.Delete("/users/{id}", h.User.Delete)

			r.Post("/articles", h.Article.Create)
			r.Patch("/articles/{id}", h.Article.Update)
			r.Delete("/articles/{id}", h.Article.Delete)

			r.Post("/page-views", h.PageView.Record)
			r.Get("/page-views/count", h.PageView.Count)
			r.Get("/page-views/aggregate-date", h.PageView.Aggregate)
		})
	})

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"Not Found"}`))
	})

	return mux
}

package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed static
var staticFiles embed.FS

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.RequestTimeout))

	r.Get("/healthz", s.handleLive)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", s.handleStats)
		r.Get("/languages", s.handleLanguages)
		r.Get("/search", s.handleSearch)
		r.Get("/lemmas/{lemma}/senses", s.handleSenses)
		r.Get("/synsets/{key}", s.handleSynset)
		r.Get("/tree/{key}", s.handleTree)
		r.Get("/render/{key}", s.handleRender)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/{id}", s.handleGetSession)
			r.Post("/{id}/select", s.handleSelect)
			r.Post("/{id}/back", s.handleBack)
			r.Delete("/{id}", s.handleDeleteSession)
		})

		r.Post("/admin/rebuild", s.handleRebuild)
	})

	static, _ := fs.Sub(staticFiles, "static")
	r.Handle("/*", http.FileServer(http.FS(static)))
	return r
}

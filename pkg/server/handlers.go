package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/synsetree/pkg/buildinfo"
	"github.com/matzehuels/synsetree/pkg/pipeline"
	"github.com/matzehuels/synsetree/pkg/snapshot"
)

// HealthResponse is the JSON response for /healthz and /readyz.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// StatsResponse summarizes the current graph snapshot.
type StatsResponse struct {
	snapshot.Stats
	BuiltAt time.Time `json:"built_at"`
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   buildinfo.Get().Version,
		Timestamp: time.Now(),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	status, code := "ok", http.StatusOK
	if !s.runner.Ready() {
		status, code = "building", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:    status,
		Version:   buildinfo.Get().Version,
		Timestamp: time.Now(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap, err := s.runner.Snapshot()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatsResponse{Stats: snap.Stats(), BuiltAt: snap.BuiltAt()})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	langs, err := s.runner.Languages(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": langs,
		"default":   s.opts.DefaultLanguage,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	lang := s.queryLanguage(r)
	matches, err := s.runner.Search(r.Context(), r.URL.Query().Get("q"), lang)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if matches == nil {
		matches = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"language": lang,
		"lemmas":   matches,
	})
}

func (s *Server) handleSenses(w http.ResponseWriter, r *http.Request) {
	senses, err := s.runner.Resolve(r.Context(), chi.URLParam(r, "lemma"), s.queryLanguage(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"senses": senses})
}

func (s *Server) handleSynset(w http.ResponseWriter, r *http.Request) {
	info, err := s.runner.Describe(r.Context(), chi.URLParam(r, "key"), s.queryLanguage(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// TreeResponse is an explored view plus its display lines.
type TreeResponse struct {
	*pipeline.View
	Report []string `json:"report"`
}

func (s *Server) explore(r *http.Request, root string, limit int, lang string) (*TreeResponse, error) {
	view, err := s.runner.Explore(r.Context(), pipeline.Options{
		Root:     root,
		Limit:    limit,
		Language: lang,
	})
	if err != nil {
		return nil, err
	}
	return &TreeResponse{View: view, Report: view.Report()}, nil
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	limit, err := s.queryLimit(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp, err := s.explore(r, chi.URLParam(r, "key"), limit, s.queryLanguage(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	limit, err := s.queryLimit(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	ropts := pipeline.RenderOptions{
		Format:   q.Get("format"),
		Layout:   q.Get("layout"),
		Detailed: q.Get("detailed") == "true",
	}
	if err := ropts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.runner.Explore(r.Context(), pipeline.Options{
		Root:     chi.URLParam(r, "key"),
		Limit:    limit,
		Language: s.queryLanguage(r),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := s.runner.Render(r.Context(), view, ropts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[ropts.Format])
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	snap, err := s.runner.Build(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("rebuilt graph", "duration", time.Since(start))
	writeJSON(w, http.StatusOK, StatsResponse{Stats: snap.Stats(), BuiltAt: snap.BuiltAt()})
}

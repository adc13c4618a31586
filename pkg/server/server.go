// Package server exposes the pipeline over HTTP.
//
// It is the visualization adapter: browsers fetch the bounded tree as JSON
// (the {name, synset_key, children} contract) or as a rendered diagram,
// and drive recursive drill-down through sessions. Selecting a node posts
// its synset_key; the server resolves it and re-roots extraction there.
//
// # Routes
//
//	GET    /healthz                       liveness
//	GET    /readyz                        503 until the graph is built
//	GET    /api/stats                     graph summary
//	GET    /api/languages                 display languages
//	GET    /api/search?q=&lang=           lemma search, exact match first
//	GET    /api/lemmas/{lemma}/senses     senses of a lemma in the graph
//	GET    /api/synsets/{key}             sense details with hypernym paths
//	GET    /api/tree/{key}?limit=&lang=   bounded subtree and totals
//	GET    /api/render/{key}?format=      subtree as json, dot, svg, png or pdf
//	POST   /api/sessions                  start drill-down at a root
//	GET    /api/sessions/{id}             current view of a session
//	POST   /api/sessions/{id}/select      re-root at {"synset_key": ...}
//	POST   /api/sessions/{id}/back        return to the previous root
//	DELETE /api/sessions/{id}             end a session
//	POST   /api/admin/rebuild             rebuild and swap the graph snapshot
//
// Errors are JSON {"error": {"code", "message"}, "request_id"} with the
// status given by [apperrors.HTTPStatus].
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/synsetree/pkg/pipeline"
	"github.com/matzehuels/synsetree/pkg/session"
)

const cleanupInterval = 10 * time.Minute

// DefaultMaxLimit caps the node limit a request may ask for. The projected
// tree repeats shared senses, so its size grows faster than the limit.
const DefaultMaxLimit = 2000

// Options configures a Server. Zero fields take defaults.
type Options struct {
	DefaultLimit    int
	MaxLimit        int
	DefaultLanguage string
	SessionTTL      time.Duration
	RequestTimeout  time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (o *Options) setDefaults() {
	if o.DefaultLimit == 0 {
		o.DefaultLimit = pipeline.DefaultLimit
	}
	if o.MaxLimit == 0 {
		o.MaxLimit = DefaultMaxLimit
	}
	if o.DefaultLanguage == "" {
		o.DefaultLanguage = pipeline.DefaultLanguage
	}
	if o.SessionTTL == 0 {
		o.SessionTTL = session.DefaultTTL
	}
	if o.RequestTimeout == 0 {
		o.RequestTimeout = 60 * time.Second
	}
	if o.ReadTimeout == 0 {
		o.ReadTimeout = 10 * time.Second
	}
	if o.WriteTimeout == 0 {
		o.WriteTimeout = 60 * time.Second
	}
	if o.ShutdownTimeout == 0 {
		o.ShutdownTimeout = 10 * time.Second
	}
}

// Server serves the HTTP API for one pipeline runner.
type Server struct {
	runner   *pipeline.Runner
	sessions session.Store
	opts     Options
	logger   *log.Logger
	handler  http.Handler
}

// New creates a server. A nil store keeps sessions in memory.
func New(runner *pipeline.Runner, store session.Store, opts Options, logger *log.Logger) *Server {
	if store == nil {
		store = session.NewMemoryStore()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts.setDefaults()
	s := &Server{
		runner:   runner,
		sessions: store,
		opts:     opts,
		logger:   logger,
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully. Expired sessions are purged periodically while serving.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	go s.cleanupLoop(ctx)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}

func (s *Server) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.sessions.Cleanup(ctx); err != nil {
				s.logger.Warn("session cleanup failed", "error", err)
			}
		}
	}
}

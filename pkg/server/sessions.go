package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/session"
)

// CreateSessionRequest starts a drill-down session.
type CreateSessionRequest struct {
	Root     string `json:"root"`
	Limit    int    `json:"limit,omitempty"`
	Language string `json:"language,omitempty"`
}

// SelectRequest is the selection event emitted by a rendered tree.
type SelectRequest struct {
	SynsetKey string `json:"synset_key"`
}

// SessionResponse is a session together with the view at its current root.
type SessionResponse struct {
	Session *session.Session `json:"session"`
	Tree    *TreeResponse    `json:"tree"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

func (s *Server) loadSession(r *http.Request) (*session.Session, error) {
	id := chi.URLParam(r, "id")
	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperrors.New(apperrors.ErrCodeSessionNotFound, "session %q not found or expired", id)
	}
	return sess, nil
}

// respondSession explores the session's current root and, when that
// succeeds, persists the session with a refreshed expiry.
func (s *Server) respondSession(w http.ResponseWriter, r *http.Request, sess *session.Session, status int) {
	tree, err := s.explore(r, sess.Current(), sess.Limit, sess.Language)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sess.Extend(s.opts.SessionTTL)
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, status, SessionResponse{Session: sess, Tree: tree})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Limit == 0 {
		req.Limit = s.opts.DefaultLimit
	}
	if err := s.checkLimit(req.Limit); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Language == "" {
		req.Language = s.opts.DefaultLanguage
	}
	sess := session.New(req.Root, req.Language, req.Limit, s.opts.SessionTTL)
	s.respondSession(w, r, sess, http.StatusCreated)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondSession(w, r, sess, http.StatusOK)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req SelectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	// Resolve before touching the session so a bad key leaves it as is.
	info, err := s.runner.Describe(r.Context(), req.SynsetKey, sess.Language)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sess.Push(info.Key)
	s.respondSession(w, r, sess, http.StatusOK)
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sess.Back()
	s.respondSession(w, r, sess, http.StatusOK)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

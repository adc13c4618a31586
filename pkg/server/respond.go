package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/matzehuels/synsetree/pkg/errors"
	"github.com/matzehuels/synsetree/pkg/pipeline"
)

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorDetail carries the machine-readable code and a user message.
type ErrorDetail struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	err = pipeline.Classify(err)
	code := apperrors.GetCode(err)
	status := apperrors.HTTPStatus(code)
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, ErrorBody{
		Error:     ErrorDetail{Code: code, Message: apperrors.UserMessage(err)},
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// queryLimit parses ?limit=, falling back to the server default.
func (s *Server) queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return s.opts.DefaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "limit must be an integer")
	}
	return limit, s.checkLimit(limit)
}

func (s *Server) checkLimit(limit int) error {
	if limit > s.opts.MaxLimit {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "limit must be at most %d", s.opts.MaxLimit)
	}
	return nil
}

func (s *Server) queryLanguage(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return lang
	}
	return s.opts.DefaultLanguage
}

// Package session keeps drill-down state for interactive exploration.
//
// A [Session] records the chain of senses a user has re-rooted the view
// at, together with the language and node limit they chose. Selecting a
// node in a rendered tree pushes it; going back pops it. The server keeps
// one session per browser, the TUI one per user.
//
// Backends implement [Store]:
//   - [MemoryStore]: in-process map for a single server instance
//   - [FileStore]: JSON files, used by the CLI to resume browsing
//   - [MongoStore]: MongoDB with a TTL index, for multi-instance servers
//
// # Usage
//
//	sess := session.New("entity.n.01", "eng", 200, session.DefaultTTL)
//	store.Set(ctx, sess)
//
//	sess, err := store.Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if sess == nil {
//	    // Session not found or expired
//	}
//	sess.Push("animal.n.01")
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is the default session duration.
const DefaultTTL = 24 * time.Hour

// Session stores one user's drill-down state.
type Session struct {
	ID        string    `json:"id" bson:"_id"`
	Language  string    `json:"language" bson:"language"`
	Limit     int       `json:"limit" bson:"limit"`
	History   []string  `json:"history" bson:"history"` // visited roots, current last
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
}

// New creates a session rooted at root with a random ID.
func New(root, language string, limit int, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Language:  language,
		Limit:     limit,
		History:   []string{root},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Current returns the sense the view is rooted at, or "" for an empty history.
func (s *Session) Current() string {
	if len(s.History) == 0 {
		return ""
	}
	return s.History[len(s.History)-1]
}

// Push re-roots the view at key. Selecting the current root is a no-op.
func (s *Session) Push(key string) {
	if s.Current() == key {
		return
	}
	s.History = append(s.History, key)
	s.touch()
}

// Back returns to the previous root. It reports false, leaving the
// session unchanged, when already at the first root.
func (s *Session) Back() bool {
	if len(s.History) <= 1 {
		return false
	}
	s.History = s.History[:len(s.History)-1]
	s.touch()
	return true
}

// Extend pushes the expiry to ttl from now.
func (s *Session) Extend(ttl time.Duration) {
	s.ExpiresAt = time.Now().UTC().Add(ttl)
}

func (s *Session) touch() { s.UpdatedAt = time.Now().UTC() }

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Set stores a session, replacing any with the same ID.
	Set(ctx context.Context, session *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, sessionID string) error

	// Cleanup removes expired sessions (may be a no-op where the backend
	// expires entries itself).
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

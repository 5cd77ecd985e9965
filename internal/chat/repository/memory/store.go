package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"emoch-backend/internal/model"
	"emoch-backend/pkg/log"
)

// Config tunes the in-memory session store.
type Config struct {
	MaxHistory  int
	MaxSessions int
	// SessionTTL evicts sessions idle longer than this. Zero disables
	// expiry: sessions then live until process exit or LRU capacity
	// eviction.
	SessionTTL time.Duration
}

// session holds one conversation's history. Its mutex makes every append a
// single atomic unit and keeps snapshots consistent; contention is strictly
// per session.
type session struct {
	mu       sync.Mutex
	messages []model.Message
}

func (s *session) snapshot() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return nil
	}
	return append([]model.Message(nil), s.messages...)
}

// Store is an in-memory SessionRepository. The expirable LRU supplies the
// idle-session TTL sweep and a capacity bound; per-session mutexes serialize
// history mutation, and the store-level mutex only guards get-or-create
// insertion so unrelated sessions never contend.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
	cfg      Config
	l        log.Logger
}

// New creates an empty session store.
func New(l log.Logger, cfg Config) *Store {
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}

	return &Store{
		sessions: expirable.NewLRU[string, *session](cfg.MaxSessions, nil, cfg.SessionTTL),
		cfg:      cfg,
		l:        l,
	}
}

// Resolve returns the token and a history snapshot for a known id, or
// creates a fresh empty session. A syntactically invalid or stale id is
// simply unknown and yields a new session rather than an error.
func (s *Store) Resolve(ctx context.Context, id string) (string, []model.Message) {
	if id != "" {
		if sess, ok := s.sessions.Get(id); ok {
			return id, sess.snapshot()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the insertion lock: a racing creator of the same id
	// must not be shadowed.
	if id != "" {
		if sess, ok := s.sessions.Get(id); ok {
			return id, sess.snapshot()
		}
	}

	token := uuid.NewString()
	s.sessions.Add(token, &session{})
	s.l.Debugf(ctx, "session store: created session %s", token)
	return token, nil
}

// Append atomically extends the session's history and enforces the bound.
// Oldest messages are dropped first, never the newest.
func (s *Store) Append(ctx context.Context, id string, messages ...model.Message) {
	if len(messages) == 0 {
		return
	}

	sess, ok := s.sessions.Get(id)
	if !ok {
		// The session was evicted between resolve and append. Recreate it
		// so the turn that was just generated is not lost.
		s.mu.Lock()
		if sess, ok = s.sessions.Get(id); !ok {
			sess = &session{}
			s.sessions.Add(id, sess)
			s.l.Debugf(ctx, "session store: recreated evicted session %s", id)
		}
		s.mu.Unlock()
	}

	sess.mu.Lock()
	sess.messages = append(sess.messages, messages...)
	if n := len(sess.messages); n > s.cfg.MaxHistory {
		sess.messages = append([]model.Message(nil), sess.messages[n-s.cfg.MaxHistory:]...)
	}
	sess.mu.Unlock()

	// Re-adding refreshes the entry's recency and TTL.
	s.sessions.Add(id, sess)
}

// Snapshot returns a copy of the session's current history, or nil for an
// unknown id.
func (s *Store) Snapshot(ctx context.Context, id string) []model.Message {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil
	}
	return sess.snapshot()
}

// Len reports how many sessions are currently held.
func (s *Store) Len() int {
	return s.sessions.Len()
}

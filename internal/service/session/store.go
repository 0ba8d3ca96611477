// Package session keeps the short, per-user conversation context in memory.
// Nothing here is persisted; a restart starts every user from scratch.
package session

import (
	"sync"
	"time"
)

// DefaultLimit is the number of turns retained per user.
const DefaultLimit = 10

// Turn is one user message and the reply sent for it.
type Turn struct {
	UserMessage string
	BotReply    string
	Timestamp   time.Time
}

// Session is the accumulated context for a single user.
type Session struct {
	UserID       string
	Name         string
	Turns        []Turn
	MessageCount int
	SessionStart time.Time
}

type Stats struct {
	MessageCount int
	SessionStart time.Time
	TurnCount    int
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is the session table. The zero value is not usable, call NewStore.
type Store struct {
	sessions map[string]*Session
	limit    int
	now      func() time.Time
	mu       sync.RWMutex
}

func NewStore(limit int, opts ...Option) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s := &Store{
		sessions: make(map[string]*Session),
		limit:    limit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Limit() int {
	return s.limit
}

// GetOrCreate returns a snapshot of the user's session, creating an empty one if needed.
func (s *Store) GetOrCreate(userID string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lookupLocked(userID).snapshot()
}

// AppendTurn records a turn and evicts the oldest ones beyond the limit.
func (s *Store) AppendTurn(userID string, turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.lookupLocked(userID)
	sess.Turns = append(sess.Turns, turn)
	if over := len(sess.Turns) - s.limit; over > 0 {
		// Copy instead of reslicing so evicted turns are not pinned by the backing array.
		sess.Turns = append([]Turn(nil), sess.Turns[over:]...)
	}
	sess.MessageCount++
}

// Clear resets the session: no turns, zero messages, a fresh start time.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.lookupLocked(userID)
	sess.Turns = nil
	sess.MessageCount = 0
	sess.SessionStart = s.now()
}

func (s *Store) SetName(userID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookupLocked(userID).Name = name
}

// NameIfUnset sets the display name unless one is already stored.
// It creates the session when absent.
func (s *Store) NameIfUnset(userID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.lookupLocked(userID)
	if sess.Name == "" {
		sess.Name = name
	}
}

// Stats reports false when the user has no session yet.
func (s *Store) Stats(userID string) (Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return Stats{}, false
	}
	return Stats{
		MessageCount: sess.MessageCount,
		SessionStart: sess.SessionStart,
		TurnCount:    len(sess.Turns),
	}, true
}

// Recent returns up to n most recent turns, oldest first.
func (s *Store) Recent(userID string, n int) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok || n <= 0 {
		return nil
	}

	turns := sess.Turns
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	return append([]Turn(nil), turns...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) lookupLocked(userID string) *Session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{
			UserID:       userID,
			SessionStart: s.now(),
		}
		s.sessions[userID] = sess
	}
	return sess
}

func (sess *Session) snapshot() Session {
	cp := *sess
	cp.Turns = append([]Turn(nil), sess.Turns...)
	return cp
}

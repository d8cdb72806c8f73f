package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"movi-ops-console/internal/assistant"
)

// Session is one operator conversation: an append-only ordered message log.
type Session struct {
	ID string

	mu       sync.Mutex
	messages []assistant.Message
}

// Append adds a message to the end of the log. Messages are never edited,
// removed or reordered.
func (s *Session) Append(msg assistant.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the log in insertion order.
func (s *Session) Messages() []assistant.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]assistant.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Find returns the message with the given ID.
func (s *Session) Find(messageID string) (assistant.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range s.messages {
		if msg.ID == messageID {
			return msg, true
		}
	}
	return assistant.Message{}, false
}

// Len returns the current log length.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Store holds live sessions in an expirable LRU so idle conversations are
// dropped after the TTL without an explicit teardown call.
type Store struct {
	sessions *expirable.LRU[string, *Session]
}

// NewStore creates a session store with the given capacity and idle TTL.
func NewStore(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = 1000
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Session](capacity, nil, ttl),
	}
}

// Create opens a new session seeded with the given opening messages.
func (st *Store) Create(opening ...assistant.Message) *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		messages: append([]assistant.Message{}, opening...),
	}
	st.sessions.Add(sess.ID, sess)
	return sess
}

// Get returns the session with the given ID, refreshing its TTL.
func (st *Store) Get(id string) (*Session, bool) {
	return st.sessions.Get(id)
}

package message

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Store is the ordered, append-only message list. Every write publishes a new
// immutable revision; readers never block and always see one whole revision.
type Store struct {
	mu      sync.Mutex // serializes writers
	current atomic.Pointer[revision]
}

type revision struct {
	number   int64
	messages []Message
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&revision{})
	return s
}

// Append assigns the next ID to msg, stores it and returns the stored copy.
func (s *Store) Append(msg Message) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	msg.ID = int64(len(cur.messages)) + 1
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	next := make([]Message, len(cur.messages), len(cur.messages)+1)
	copy(next, cur.messages)
	next = append(next, msg)

	s.current.Store(&revision{number: cur.number + 1, messages: next})
	return msg
}

// Patch merges p into the latest revision of message id.
func (s *Store) Patch(id int64, p Patch) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	idx, ok := cur.position(id)
	if !ok {
		return Message{}, ErrMessageNotFound
	}

	next := slices.Clone(cur.messages)
	next[idx] = p.Apply(next[idx])

	s.current.Store(&revision{number: cur.number + 1, messages: next})
	return next[idx], nil
}

// Get returns message id from the current revision.
func (s *Store) Get(id int64) (Message, bool) {
	cur := s.current.Load()
	idx, ok := cur.position(id)
	if !ok {
		return Message{}, false
	}
	return cur.messages[idx], true
}

// Snapshot returns the current revision in display order.
func (s *Store) Snapshot() Snapshot {
	cur := s.current.Load()
	messages := slices.Clone(cur.messages)
	if messages == nil {
		messages = []Message{}
	}
	return Snapshot{Revision: cur.number, Messages: messages}
}

// Len returns the number of stored messages.
func (s *Store) Len() int {
	return len(s.current.Load().messages)
}

// IDs are dense and start at 1, so a message's position is its ID minus one.
func (r *revision) position(id int64) (int, bool) {
	idx := id - 1
	if idx < 0 || idx >= int64(len(r.messages)) {
		return 0, false
	}
	if r.messages[idx].ID != id {
		return 0, false
	}
	return int(idx), true
}

// Package session tracks live chat conversations by opaque identifier.
package session

import (
	"sync"

	"github.com/google/uuid"

	"search-relay/internal/common/metrics"
	"search-relay/internal/gemini"
)

// Store holds conversations keyed by session identifier.
type Store interface {
	Put(id string, conv gemini.Conversation)
	Get(id string) (gemini.Conversation, bool)
	Delete(id string)
	Len() int
}

// MemoryStore is the default in-process Store. Sessions live until the
// process exits; there is no expiry.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]gemini.Conversation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]gemini.Conversation)}
}

func (s *MemoryStore) Put(id string, conv gemini.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = conv
}

func (s *MemoryStore) Get(id string) (gemini.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.sessions[id]
	return conv, ok
}

func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Registry assigns identifiers to conversations and resolves them later.
type Registry struct {
	store Store
}

func NewRegistry(store Store) *Registry {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Registry{store: store}
}

// Register stores the conversation under a fresh identifier and returns it.
func (r *Registry) Register(conv gemini.Conversation) string {
	id := uuid.NewString()
	r.store.Put(id, conv)
	metrics.RelaySessionsActive.Set(float64(r.store.Len()))
	return id
}

// Lookup resolves a session identifier to its conversation.
func (r *Registry) Lookup(id string) (gemini.Conversation, bool) {
	return r.store.Get(id)
}

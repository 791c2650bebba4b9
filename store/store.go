// Package store persists app-mode session material between client restarts.
package store

import (
	"context"
	"sync"
)

// Token is the session material captured from authentication responses.
type Token struct {
	SessionToken string
	AccessToken  string
}

// TokenStore loads and persists the single current token set. Load returns
// (nil, nil) when nothing is stored.
type TokenStore interface {
	Load(ctx context.Context) (*Token, error)
	Save(ctx context.Context, token *Token) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token in process memory. Suitable for tests and
// short-lived clients.
type MemoryStore struct {
	mu    sync.Mutex
	token *Token
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return nil, nil
	}
	cp := *s.token
	return &cp, nil
}

func (s *MemoryStore) Save(_ context.Context, token *Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == nil {
		s.token = nil
		return nil
	}
	cp := *token
	s.token = &cp
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	return nil
}

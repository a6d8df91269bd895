package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore keeps the development setup database-free. It intentionally
// favors clarity over performance.
type InMemoryStore struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users:   make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *InMemoryStore) Create(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := s.byEmail[key]; exists {
		return ErrEmailTaken
	}
	copied := *user
	s.users[user.ID] = &copied
	s.byEmail[key] = user.ID
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.byEmail[strings.ToLower(email)]; ok {
		copied := *s.users[id]
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *InMemoryStore) ListByType(_ context.Context, userType UserType) ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*User
	for _, user := range s.users {
		if user.UserType == userType {
			copied := *user
			out = append(out, &copied)
		}
	}
	return out, nil
}

package document

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore keeps documents in a map for development and tests.
type InMemoryStore struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]*Document
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{docs: make(map[uuid.UUID]*Document)}
}

func copyDoc(doc *Document) *Document {
	copied := *doc
	copied.Tags = append([]string(nil), doc.Tags...)
	return &copied
}

func (s *InMemoryStore) Create(_ context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = copyDoc(doc)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, ownerID, id uuid.UUID) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok || doc.UserID != ownerID {
		return nil, ErrNotFound
	}
	return copyDoc(doc), nil
}

func (s *InMemoryStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Document
	for _, doc := range s.docs {
		if doc.UserID == ownerID {
			out = append(out, copyDoc(doc))
		}
	}
	// Most recently updated first, matching the Postgres ordering.
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.docs[doc.ID]
	if !ok || existing.UserID != doc.UserID {
		return ErrNotFound
	}
	s.docs[doc.ID] = copyDoc(doc)
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok || doc.UserID != ownerID {
		return ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

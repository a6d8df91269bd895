package document

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lawmate/internal/audit"
	"lawmate/internal/platform/metrics"
	derrors "lawmate/pkg/domain-errors"
)

// Service owns document lifecycle on behalf of authenticated users.
type Service struct {
	store   Store
	metrics *metrics.Metrics
	audit   audit.Publisher
}

func NewService(store Store, m *metrics.Metrics, publisher audit.Publisher) *Service {
	if publisher == nil {
		publisher = audit.Noop{}
	}
	return &Service{store: store, metrics: m, audit: publisher}
}

func parseOwner(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, derrors.New(derrors.CodeInvalidInput, "invalid user id")
	}
	return id, nil
}

// Create stores a new document for the owner.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (*Document, error) {
	ownerID, err := parseOwner(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &Document{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     req.Title,
		Content:   req.Content,
		Type:      req.Type,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	if err := s.store.Create(ctx, doc); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DocumentsCreated.Inc()
	}
	s.audit.Publish(ctx, audit.NewEvent(userID, audit.ActionDocumentCreated, doc.ID.String()))

	return doc, nil
}

// List returns the owner's documents, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]*Document, error) {
	ownerID, err := parseOwner(userID)
	if err != nil {
		return nil, err
	}
	docs, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []*Document{}
	}
	return docs, nil
}

// Get returns one document; documents owned by others read as not found.
func (s *Service) Get(ctx context.Context, userID, docID string) (*Document, error) {
	ownerID, err := parseOwner(userID)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(docID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.store.FindByID(ctx, ownerID, id)
}

// Update overwrites the mutable fields of an owned document.
func (s *Service) Update(ctx context.Context, userID, docID string, req UpdateRequest) (*Document, error) {
	doc, err := s.Get(ctx, userID, docID)
	if err != nil {
		return nil, err
	}

	doc.Title = req.Title
	doc.Content = req.Content
	doc.Tags = req.Tags
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	doc.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.audit.Publish(ctx, audit.NewEvent(userID, audit.ActionDocumentUpdated, doc.ID.String()))
	return doc, nil
}

// Delete removes an owned document.
func (s *Service) Delete(ctx context.Context, userID, docID string) error {
	ownerID, err := parseOwner(userID)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(docID)
	if err != nil {
		return ErrNotFound
	}
	if err := s.store.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.audit.Publish(ctx, audit.NewEvent(userID, audit.ActionDocumentDeleted, docID))
	return nil
}

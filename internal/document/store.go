package document

import (
	"context"

	"github.com/google/uuid"

	derrors "lawmate/pkg/domain-errors"
)

// ErrNotFound covers both missing documents and documents owned by someone
// else; callers cannot distinguish the two.
var ErrNotFound = derrors.New(derrors.CodeNotFound, "document not found")

// Store abstracts document persistence. Every operation is scoped to an
// owner so ownership checks cannot be forgotten at call sites.
type Store interface {
	Create(ctx context.Context, doc *Document) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Document, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Document, error)
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

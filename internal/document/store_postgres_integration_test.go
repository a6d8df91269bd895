//go:build integration

package document_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"lawmate/internal/auth"
	"lawmate/internal/document"
	"lawmate/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *document.PostgresStore
	users    *auth.PostgresStore
	ownerID  uuid.UUID
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = document.NewPostgresStore(s.postgres.DB)
	s.users = auth.NewPostgresStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "documents", "users"))

	// Documents reference users, so each test needs an owner row.
	now := time.Now().UTC()
	s.ownerID = uuid.New()
	s.Require().NoError(s.users.Create(ctx, &auth.User{
		ID:           s.ownerID,
		FirstName:    "Omar",
		LastName:     "Chami",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		UserType:     auth.UserTypeUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
}

func (s *PostgresStoreSuite) newDoc(title string) *document.Document {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &document.Document{
		ID:        uuid.New(),
		UserID:    s.ownerID,
		Title:     title,
		Content:   "نص الوثيقة",
		Type:      "rental",
		Tags:      []string{"إيجار", "بيروت"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *PostgresStoreSuite) TestCreateAndFindRoundTrip() {
	ctx := context.Background()
	doc := s.newDoc("عقد إيجار")
	s.Require().NoError(s.store.Create(ctx, doc))

	found, err := s.store.FindByID(ctx, s.ownerID, doc.ID)
	s.Require().NoError(err)
	s.Equal(doc.Title, found.Title)
	s.Equal(doc.Content, found.Content)
	s.Equal([]string{"إيجار", "بيروت"}, found.Tags)
}

func (s *PostgresStoreSuite) TestOwnershipScoping() {
	ctx := context.Background()
	doc := s.newDoc("سري")
	s.Require().NoError(s.store.Create(ctx, doc))

	_, err := s.store.FindByID(ctx, uuid.New(), doc.ID)
	s.ErrorIs(err, document.ErrNotFound)

	err = s.store.Delete(ctx, uuid.New(), doc.ID)
	s.ErrorIs(err, document.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListOrdering() {
	ctx := context.Background()

	older := s.newDoc("الأقدم")
	older.UpdatedAt = older.UpdatedAt.Add(-time.Hour)
	newer := s.newDoc("الأحدث")

	s.Require().NoError(s.store.Create(ctx, older))
	s.Require().NoError(s.store.Create(ctx, newer))

	docs, err := s.store.ListByOwner(ctx, s.ownerID)
	s.Require().NoError(err)
	s.Require().Len(docs, 2)
	s.Equal("الأحدث", docs[0].Title)
	s.Equal("الأقدم", docs[1].Title)
}

func (s *PostgresStoreSuite) TestUpdateAndDelete() {
	ctx := context.Background()
	doc := s.newDoc("مسودة")
	s.Require().NoError(s.store.Create(ctx, doc))

	doc.Title = "نسخة نهائية"
	doc.Tags = []string{}
	doc.UpdatedAt = time.Now().UTC()
	s.Require().NoError(s.store.Update(ctx, doc))

	found, err := s.store.FindByID(ctx, s.ownerID, doc.ID)
	s.Require().NoError(err)
	s.Equal("نسخة نهائية", found.Title)
	s.Empty(found.Tags)

	s.Require().NoError(s.store.Delete(ctx, s.ownerID, doc.ID))
	err = s.store.Delete(ctx, s.ownerID, doc.ID)
	s.ErrorIs(err, document.ErrNotFound)
}

package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresStore persists documents in PostgreSQL. Tags live in a text array
// column rather than a join table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const docColumns = `id, user_id, title, content, doc_type, tags, is_template, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, doc *Document) error {
	query := `
		INSERT INTO documents (` + docColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		doc.ID, doc.UserID, doc.Title, doc.Content, doc.Type,
		pq.Array(doc.Tags), doc.IsTemplate, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Document, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+docColumns+` FROM documents WHERE id = $1 AND user_id = $2`, id, ownerID)
	return scanDocument(row)
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+docColumns+` FROM documents WHERE user_id = $1 ORDER BY updated_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, doc *Document) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE documents
		SET title = $3, content = $4, tags = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2
	`, doc.ID, doc.UserID, doc.Title, doc.Content, pq.Array(doc.Tags), doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return checkAffected(result)
}

func (s *PostgresStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*Document, error) {
	var doc Document
	var tags pq.StringArray
	err := row.Scan(
		&doc.ID, &doc.UserID, &doc.Title, &doc.Content, &doc.Type,
		&tags, &doc.IsTemplate, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan document: %w", err)
	}
	doc.Tags = tags
	return &doc, nil
}

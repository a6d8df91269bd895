package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, first_name, last_name, email, password_hash, user_type,
	business_name, license_number, bar_association, phone, specialties,
	languages, price_per_session, experience, mokhtar_office, approved,
	created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, lower($4), $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.UserType, user.BusinessName, user.LicenseNumber, user.BarAssociation,
		user.Phone, user.Specialties, user.Languages, user.PricePerSession,
		user.Experience, user.MokhtarOffice, user.Approved,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = lower($1)`, email)
	return scanUser(row)
}

func (s *PostgresStore) Update(ctx context.Context, user *User) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, business_name = $4, approved = $5, updated_at = $6
		WHERE id = $1
	`, user.ID, user.FirstName, user.LastName, user.BusinessName, user.Approved, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListByType(ctx context.Context, userType UserType) ([]*User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_type = $1 ORDER BY created_at`, userType)
	if err != nil {
		return nil, fmt.Errorf("list users by type: %w", err)
	}
	defer rows.Close()

	var out []*User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, user)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash,
		&user.UserType, &user.BusinessName, &user.LicenseNumber, &user.BarAssociation,
		&user.Phone, &user.Specialties, &user.Languages, &user.PricePerSession,
		&user.Experience, &user.MokhtarOffice, &user.Approved,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-manager/internal/domain"
)

// credentialID is the key of the singleton shared-login row.
const credentialID = "login"

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// === CredentialStorage ===

func (s *Storage) GetCredential(ctx context.Context) (*domain.Credential, error) {
	var cred domain.Credential
	err := s.db.QueryRow(ctx, `
		SELECT password_hash, updated_at FROM credentials WHERE id = $1
	`, credentialID).Scan(&cred.PasswordHash, &cred.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}
	return &cred, nil
}

func (s *Storage) UpdateCredential(ctx context.Context, passwordHash string) error {
	_, err := s.db.Exec(ctx, `
		UPDATE credentials SET password_hash = $2, updated_at = now() WHERE id = $1
	`, credentialID, passwordHash)
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	return nil
}

func (s *Storage) SeedCredential(ctx context.Context, passwordHash string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO credentials (id, password_hash) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`, credentialID, passwordHash)
	if err != nil {
		return fmt.Errorf("seed credential: %w", err)
	}
	return nil
}

// === PersonStorage ===

func (s *Storage) CreatePerson(ctx context.Context, p *domain.Person) (string, error) {
	id := uuid.NewString()
	err := s.db.QueryRow(ctx, `
		INSERT INTO persons (id, name, phone, email) VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, id, p.Name, p.Phone, p.Email).Scan(&p.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("create person: %w", err)
	}
	p.ID = id
	return id, nil
}

// newID generates an opaque document identifier.
func newID() string {
	return uuid.NewString()
}

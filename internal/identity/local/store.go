package local

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/veridia/user-provisioning/api/internal/identity"
)

// dbPool is the slice of pgxpool.Pool the store depends on.
type dbPool interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// Store is a self-hosted identity provider backed by Postgres. Passwords are
// bcrypt-hashed; accounts start with email_verified false.
type Store struct {
	pool dbPool
}

// NewStore builds a local identity store on the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// CreateAccount inserts a credential record and returns the generated uid.
func (s *Store) CreateAccount(ctx context.Context, email, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	uid := uuid.NewString()
	_, err = s.pool.Exec(ctx, `
        INSERT INTO accounts (uid, email, password_hash, email_verified)
        VALUES ($1, $2, $3, FALSE)
    `, uid, email, string(hashed))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "accounts_email") {
			return "", identity.ErrEmailTaken
		}
		return "", fmt.Errorf("insert account: %w", err)
	}

	return uid, nil
}

// VerifyPassword checks credentials against the stored hash.
func (s *Store) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	row := s.pool.QueryRow(ctx, `SELECT uid, password_hash FROM accounts WHERE email = $1`, email)

	var uid, hash string
	if err := row.Scan(&uid, &hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", identity.ErrInvalidCredentials
		}
		return "", fmt.Errorf("query account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", identity.ErrInvalidCredentials
	}

	return uid, nil
}

var _ identity.Service = (*Store)(nil)

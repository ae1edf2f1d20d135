package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veridia/user-provisioning/api/internal/entity"
)

var (
	// ErrProfileNotFound is returned when no profile exists for a uid.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when a profile is already present at the key.
	ErrProfileExists = errors.New("profile already exists")
)

// ProfileStore is the keyed-document port used for role lookups and profile
// writes. Point reads and point writes only; no transactions, no queries.
type ProfileStore interface {
	Get(ctx context.Context, uid string) (*entity.UserProfile, error)
	Create(ctx context.Context, p entity.NewProfile) (*entity.UserProfile, error)
}

// dbPool is the slice of pgxpool.Pool the store depends on.
type dbPool interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
}

// PGXProfileStore implements ProfileStore on Postgres via pgx.
type PGXProfileStore struct {
	pool dbPool
}

// NewPGXProfileStore instantiates a profile store.
func NewPGXProfileStore(pool *pgxpool.Pool) *PGXProfileStore {
	return &PGXProfileStore{pool: pool}
}

// Get point-reads a profile document by uid.
func (s *PGXProfileStore) Get(ctx context.Context, uid string) (*entity.UserProfile, error) {
	row := s.pool.QueryRow(ctx, `SELECT uid, email, role, phone, created_by, created_at FROM user_profiles WHERE uid = $1`, uid)

	var p entity.UserProfile
	if err := row.Scan(&p.UID, &p.Email, &p.Role, &p.Phone, &p.CreatedBy, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("query profile by uid: %w", err)
	}

	return &p, nil
}

// Create writes a profile document keyed by uid. created_at is assigned by
// the database, never by the caller.
func (s *PGXProfileStore) Create(ctx context.Context, np entity.NewProfile) (*entity.UserProfile, error) {
	row := s.pool.QueryRow(ctx, `
        INSERT INTO user_profiles (uid, email, role, phone, created_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING uid, email, role, phone, created_by, created_at
    `, np.UID, np.Email, np.Role, np.Phone, np.CreatedBy)

	var p entity.UserProfile
	if err := row.Scan(&p.UID, &p.Email, &p.Role, &p.Phone, &p.CreatedBy, &p.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: %v", ErrProfileExists, pgErr)
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	return &p, nil
}

var _ ProfileStore = (*PGXProfileStore)(nil)

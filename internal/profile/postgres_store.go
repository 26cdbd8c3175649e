package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each profile blob in a single jsonb row.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore builds a store backed by PostgreSQL.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load fetches the blob for the owner.
func (s *PostgresStore) Load(ctx context.Context, owner string) (Profile, error) {
	row := s.db.QueryRow(ctx, `SELECT data FROM profiles WHERE owner_id = $1`, owner)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(payload, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

// Save upserts the whole profile blob.
func (s *PostgresStore) Save(ctx context.Context, owner string, p Profile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = s.db.Exec(ctx, `INSERT INTO profiles (owner_id, data, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (owner_id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		owner, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renditeapp/rendite/internal/domain"
)

// ErrNotFound indicates that the requested entity does not exist.
var ErrNotFound = errors.New("entity not found")

// Repository defines persistent storage for entities. Records are stored as
// JSON documents keyed by kind and id, matching the flat collections the
// calculators operate on.
type Repository interface {
	Put(ctx context.Context, kind domain.Kind, id string, data []byte) error
	Get(ctx context.Context, kind domain.Kind, id string) ([]byte, error)
	List(ctx context.Context, kind domain.Kind) ([][]byte, error)
	Remove(ctx context.Context, kind domain.Kind, id string) error
}

// PgRepository implements Repository with PostgreSQL.
type PgRepository struct {
	pool *pgxpool.Pool
}

// NewPgRepository creates a new PostgreSQL entity repository.
func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Put(ctx context.Context, kind domain.Kind, id string, data []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO entities (kind, id, data)
		 VALUES ($1, $2, $3::jsonb)
		 ON CONFLICT (kind, id)
		 DO UPDATE SET data = $3::jsonb, updated_at = NOW()`,
		kind, id, data)
	if err != nil {
		return fmt.Errorf("saving %s %s: %w", kind, id, err)
	}
	return nil
}

func (r *PgRepository) Get(ctx context.Context, kind domain.Kind, id string) ([]byte, error) {
	var data []byte
	err := r.pool.QueryRow(ctx,
		`SELECT data FROM entities WHERE kind = $1 AND id = $2`,
		kind, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting %s %s: %w", kind, id, err)
	}
	return data, nil
}

func (r *PgRepository) List(ctx context.Context, kind domain.Kind) ([][]byte, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT data FROM entities WHERE kind = $1 ORDER BY created_at`, kind)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind, err)
	}
	defer rows.Close()

	var records [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", kind, err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", kind, err)
	}
	return records, nil
}

func (r *PgRepository) Remove(ctx context.Context, kind domain.Kind, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM entities WHERE kind = $1 AND id = $2`, kind, id)
	if err != nil {
		return fmt.Errorf("removing %s %s: %w", kind, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

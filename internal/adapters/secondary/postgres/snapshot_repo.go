package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"heritage-web/internal/core/domain"
	ports "heritage-web/internal/core/ports/output"
)

const createSnapshotTable = `
	CREATE TABLE IF NOT EXISTS record_snapshot (
		kind       TEXT        NOT NULL,
		record_id  TEXT        NOT NULL,
		payload    JSONB       NOT NULL,
		fetched_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (kind, record_id)
	)
`

type snapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new record snapshot repository
func NewSnapshotRepository(pool *pgxpool.Pool) ports.SnapshotRepository {
	return &snapshotRepo{pool: pool}
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createSnapshotTable); err != nil {
		return fmt.Errorf("create record_snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Save(ctx context.Context, s *ports.Snapshot) error {
	query := `
		INSERT INTO record_snapshot (kind, record_id, payload, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (kind, record_id)
		DO UPDATE SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at
	`
	_, err := r.pool.Exec(ctx, query,
		string(s.Kind),
		s.RecordID,
		[]byte(s.Payload),
		s.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert record_snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Get(ctx context.Context, kind domain.RecordKind, recordID string) (*ports.Snapshot, error) {
	query := `
		SELECT kind, record_id, payload, fetched_at
		FROM record_snapshot
		WHERE kind = $1 AND record_id = $2
	`
	var (
		s       ports.Snapshot
		k       string
		payload []byte
	)
	err := r.pool.QueryRow(ctx, query, string(kind), recordID).Scan(&k, &s.RecordID, &payload, &s.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get record_snapshot: %w", err)
	}
	s.Kind = domain.RecordKind(k)
	s.Payload = payload
	return &s, nil
}

func (r *snapshotRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

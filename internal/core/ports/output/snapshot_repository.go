package ports

import (
	"context"
	"encoding/json"
	"time"

	"heritage-web/internal/core/domain"
)

// Snapshot is the last successfully fetched payload of a primary record.
type Snapshot struct {
	Kind      domain.RecordKind
	RecordID  string
	Payload   json.RawMessage
	FetchedAt time.Time
}

// SnapshotRepository persists primary records for stale fallback rendering.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *Snapshot) error
	// Get returns domain.ErrSnapshotNotFound when nothing is stored.
	Get(ctx context.Context, kind domain.RecordKind, recordID string) (*Snapshot, error)
	Ping(ctx context.Context) error
}

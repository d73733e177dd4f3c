package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"heritage-web/internal/core/domain"
	ports "heritage-web/internal/core/ports/output"
)

const snapshotTimeout = 2 * time.Second

// Snapshotter records primary records and serves them back when the
// collection service fails. A nil repository disables both directions.
type Snapshotter struct {
	repo     ports.SnapshotRepository
	fallback bool
	now      func() time.Time
}

// NewSnapshotter creates a snapshotter; repo may be nil.
func NewSnapshotter(repo ports.SnapshotRepository, fallback bool) *Snapshotter {
	return &Snapshotter{repo: repo, fallback: fallback, now: time.Now}
}

func (s *Snapshotter) enabled() bool {
	return s != nil && s.repo != nil
}

// Store saves v as the latest snapshot. Failures are logged, never returned.
func (s *Snapshotter) Store(ctx context.Context, kind domain.RecordKind, id string, v interface{}) {
	if !s.enabled() {
		return
	}

	payload, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).WithField("kind", kind).Warn("encode snapshot failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotTimeout)
	defer cancel()

	err = s.repo.Save(ctx, &ports.Snapshot{
		Kind:      kind,
		RecordID:  id,
		Payload:   payload,
		FetchedAt: s.now(),
	})
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"kind": kind, "id": id}).Warn("save snapshot failed")
	}
}

// Recover decodes the stored snapshot into out when fetchErr is an upstream
// failure and fallback is on. Not-found and invalid ids are never recovered.
func (s *Snapshotter) Recover(ctx context.Context, kind domain.RecordKind, id string, fetchErr error, out interface{}) (time.Time, bool) {
	if !s.enabled() || !s.fallback {
		return time.Time{}, false
	}
	if !errors.Is(fetchErr, domain.ErrUpstreamUnavailable) && !errors.Is(fetchErr, domain.ErrUpstreamResponse) {
		return time.Time{}, false
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotTimeout)
	defer cancel()

	snap, err := s.repo.Get(ctx, kind, id)
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			log.WithError(err).WithFields(log.Fields{"kind": kind, "id": id}).Warn("load snapshot failed")
		}
		return time.Time{}, false
	}
	if err := json.Unmarshal(snap.Payload, out); err != nil {
		log.WithError(err).WithFields(log.Fields{"kind": kind, "id": id}).Warn("decode snapshot failed")
		return time.Time{}, false
	}

	log.WithError(fetchErr).WithFields(log.Fields{
		"kind":       kind,
		"id":         id,
		"fetched_at": snap.FetchedAt,
	}).Warn("serving stale snapshot")
	return snap.FetchedAt, true
}

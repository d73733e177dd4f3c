package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"heritage-web/internal/core/domain"
	"heritage-web/internal/requestid"
)

const defaultSecondaryTimeout = 3 * time.Second

// secondaryContext bounds a lookup whose failure leaves the page section empty.
func secondaryContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultSecondaryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// logSecondaryFailure warns about a failed secondary fetch. Nothing is logged
// once group is done: the primary fetch already failed the page.
func logSecondaryFailure(ctx, group context.Context, kind domain.RecordKind, id string, err error) {
	if group.Err() != nil {
		return
	}
	log.WithError(err).WithFields(log.Fields{
		"kind":       kind,
		"id":         id,
		"request_id": requestid.FromContext(ctx),
	}).Warn("secondary fetch failed")
}

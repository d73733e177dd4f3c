package handlers

import (
	"errors"
	"net/http"

	"heritage-web/internal/adapters/primary/http/views"
	"heritage-web/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func statusForError(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrArtworkNotFound),
		errors.Is(err, domain.ErrArtistNotFound),
		errors.Is(err, domain.ErrProvenanceNotFound):
		return http.StatusNotFound

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidFilter):
		return http.StatusBadRequest

	// Upstream errors
	case errors.Is(err, domain.ErrUpstreamUnavailable),
		errors.Is(err, domain.ErrUpstreamResponse):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// renderDomainError renders the error panel for a failed primary record.
func renderDomainError(c *gin.Context, kind domain.RecordKind, err error) {
	status := statusForError(err)

	entry := log.WithError(err).WithFields(log.Fields{
		"kind":       kind,
		"id":         c.Param("id"),
		"status":     status,
		"request_id": c.GetString("request_id"),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("load page failed")
	} else {
		entry.Info("load page failed")
	}

	c.HTML(status, views.PageError, views.NewErrorView(kind, err))
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// Collection Errors
// ============================================================================

// Not found errors
var (
	ErrArtworkNotFound    = errors.New("artwork not found")
	ErrArtistNotFound     = errors.New("artist not found")
	ErrProvenanceNotFound = errors.New("provenance not found")
)

// Validation errors
var (
	ErrInvalidID     = errors.New("invalid record id")
	ErrInvalidFilter = errors.New("invalid artwork filter")
)

// Upstream errors
var (
	ErrUpstreamUnavailable = errors.New("collection service unavailable")
	ErrUpstreamResponse    = errors.New("collection service returned an invalid response")
)

// ============================================================================
// Snapshot Errors
// ============================================================================

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// RecordKind names the record family a request was about.
type RecordKind string

const (
	KindArtwork        RecordKind = "artwork"
	KindArtworks       RecordKind = "artworks"
	KindArtist         RecordKind = "artist"
	KindProvenance     RecordKind = "provenance"
	KindRecommendation RecordKind = "recommendations"
)

// NotFound returns the not-found sentinel for the kind, or nil.
func (k RecordKind) NotFound() error {
	switch k {
	case KindArtwork:
		return ErrArtworkNotFound
	case KindArtist:
		return ErrArtistNotFound
	case KindProvenance:
		return ErrProvenanceNotFound
	}
	return nil
}

// UpstreamError is an "error" field reported by the collection API in an
// otherwise successful response.
type UpstreamError struct {
	Kind    RecordKind
	ID      string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Kind, e.ID, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	if strings.Contains(strings.ToLower(e.Message), "not found") {
		if nf := e.Kind.NotFound(); nf != nil {
			return nf
		}
	}
	return ErrUpstreamResponse
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrArtworkNotFound) ||
		errors.Is(err, ErrArtistNotFound) ||
		errors.Is(err, ErrProvenanceNotFound)
}

// UserMessage is the text shown in the error panel.
func UserMessage(err error) string {
	var upErr *UpstreamError
	switch {
	case errors.As(err, &upErr):
		return upErr.Message
	case errors.Is(err, ErrArtworkNotFound):
		return ErrArtworkNotFound.Error()
	case errors.Is(err, ErrArtistNotFound):
		return ErrArtistNotFound.Error()
	case errors.Is(err, ErrProvenanceNotFound):
		return ErrProvenanceNotFound.Error()
	case errors.Is(err, ErrInvalidID):
		return ErrInvalidID.Error()
	case errors.Is(err, ErrInvalidFilter):
		return ErrInvalidFilter.Error()
	case errors.Is(err, ErrUpstreamUnavailable):
		return ErrUpstreamUnavailable.Error()
	case errors.Is(err, ErrUpstreamResponse):
		return ErrUpstreamResponse.Error()
	}
	return "unexpected error"
}

package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError_Unwrap(t *testing.T) {
	notFound := &UpstreamError{Kind: KindArtwork, ID: "a1", Message: "Artwork not found"}
	assert.ErrorIs(t, notFound, ErrArtworkNotFound)
	assert.True(t, IsNotFound(notFound))

	failed := &UpstreamError{Kind: KindArtwork, ID: "a1", Message: "Failed to retrieve artwork"}
	assert.ErrorIs(t, failed, ErrUpstreamResponse)
	assert.False(t, IsNotFound(failed))

	artists := &UpstreamError{Kind: KindArtworks, Message: "not found"}
	assert.ErrorIs(t, artists, ErrUpstreamResponse)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Artwork not found", UserMessage(&UpstreamError{Kind: KindArtwork, Message: "Artwork not found"}))
	assert.Equal(t, "artist not found", UserMessage(fmt.Errorf("load: %w", ErrArtistNotFound)))
	assert.Equal(t, "collection service unavailable", UserMessage(fmt.Errorf("%w: dial", ErrUpstreamUnavailable)))
	assert.Equal(t, "unexpected error", UserMessage(errors.New("boom")))
}

package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromURI(t *testing.T) {
	cases := map[string]string{
		"http://arp-greatteam.org/heritage-provenance/artwork/a12": "a12",
		"http://arp-greatteam.org/heritage-provenance/artist/x/":   "x",
		"plain": "plain",
		"":      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, IDFromURI(in), in)
	}
}

func TestAgent_IsPlaceholder(t *testing.T) {
	var nilAgent *Agent
	assert.True(t, nilAgent.IsPlaceholder())
	assert.True(t, (&Agent{Name: "Unknown"}).IsPlaceholder())
	assert.True(t, (&Agent{URI: "http://example.org/artist/Unknown", Name: "Unknown"}).IsPlaceholder())
	assert.False(t, (&Agent{URI: "http://example.org/artist/grigorescu", Name: "Nicolae Grigorescu"}).IsPlaceholder())
}

func TestArtwork_PrimaryImage(t *testing.T) {
	assert.Equal(t, "a.jpg", (&Artwork{ImageURL: "a.jpg", Images: []string{"b.jpg"}}).PrimaryImage())
	assert.Equal(t, "b.jpg", (&Artwork{Images: []string{"b.jpg", "c.jpg"}}).PrimaryImage())
	assert.Equal(t, "", (&Artwork{}).PrimaryImage())
}

func TestArtwork_DecodeProvenancePresence(t *testing.T) {
	var without Artwork
	require.NoError(t, json.Unmarshal([]byte(`{"uri":"u","title":"t"}`), &without))
	assert.False(t, without.HasProvenance())

	var empty Artwork
	require.NoError(t, json.Unmarshal([]byte(`{"uri":"u","provenance_chain":[]}`), &empty))
	assert.True(t, empty.HasProvenance())
	assert.Empty(t, empty.ProvenanceChain)
}

func TestArtworkFilter_Normalize(t *testing.T) {
	assert.Equal(t, DefaultArtworkLimit, ArtworkFilter{}.Normalize().Limit)
	assert.Equal(t, MaxArtworkLimit, ArtworkFilter{Limit: 500}.Normalize().Limit)
	assert.Equal(t, 7, ArtworkFilter{Limit: 7}.Normalize().Limit)
	assert.True(t, ArtworkFilter{Limit: 7}.IsZero())
	assert.False(t, ArtworkFilter{ArtistID: "a"}.IsZero())
}

func TestOrUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", OrUnknown(""))
	assert.Equal(t, "Unknown", OrUnknown("  "))
	assert.Equal(t, "Oil", OrUnknown("Oil"))
	assert.Equal(t, "Unknown date", OrDefault("", "Unknown date"))
}

package collectionapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heritage-web/internal/config"
	"heritage-web/internal/core/domain"
	"heritage-web/internal/requestid"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *collectionClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewCollectionClient(&config.UpstreamConfig{URL: srv.URL + "/", Timeout: 2 * time.Second})
	return c.(*collectionClient)
}

func TestGetArtwork(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/artworks/a1", r.URL.Path)
		assert.Equal(t, "req-1", r.Header.Get(requestid.Header))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"uri": "http://arp-greatteam.org/heritage-provenance/artwork/a1",
			"title": "Car cu boi",
			"title_ro": "Car cu boi",
			"artist": {"uri": "http://arp-greatteam.org/heritage-provenance/artist/grigorescu", "name": "Nicolae Grigorescu"},
			"current_location": {"uri": "http://x/location/mnar", "name": "MNAR"},
			"imageURL": "https://img/a1.jpg",
			"romanian_heritage": true,
			"provenance_chain": [{"event_type": "Creation"}]
		}`))
	})

	ctx := requestid.WithContext(context.Background(), "req-1")
	artwork, err := c.GetArtwork(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Car cu boi", artwork.Title)
	assert.Equal(t, "Nicolae Grigorescu", artwork.ArtistName())
	assert.Equal(t, "MNAR", artwork.LocationName())
	assert.True(t, artwork.RomanianHeritage)
	assert.Len(t, artwork.ProvenanceChain, 1)
}

func TestGetArtwork_ErrorField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Artwork not found", "artwork_id": "zz"}`))
	})

	_, err := c.GetArtwork(context.Background(), "zz")
	require.Error(t, err)
	var upErr *domain.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "Artwork not found", upErr.Message)
	assert.ErrorIs(t, err, domain.ErrArtworkNotFound)
}

func TestGetArtwork_HTTPStatuses(t *testing.T) {
	notFound := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := notFound.GetArtwork(context.Background(), "a1")
	assert.ErrorIs(t, err, domain.ErrArtworkNotFound)

	broken := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err = broken.GetArtwork(context.Background(), "a1")
	assert.ErrorIs(t, err, domain.ErrUpstreamResponse)

	garbage := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})
	_, err = garbage.GetArtwork(context.Background(), "a1")
	assert.ErrorIs(t, err, domain.ErrUpstreamResponse)
}

func TestGetArtwork_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewCollectionClient(&config.UpstreamConfig{URL: url, Timeout: time.Second})
	_, err := c.GetArtwork(context.Background(), "a1")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestGetArtwork_InvalidID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := c.GetArtwork(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	_, err = c.GetArtist(context.Background(), "a/b")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	for _, id := range []string{".", ".."} {
		_, err = c.GetArtwork(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrInvalidID, id)
		_, err = c.GetProvenance(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrInvalidID, id)
	}
}

func TestListArtworks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/artworks", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "grigorescu", q.Get("artist_id"))
		assert.Equal(t, "painting", q.Get("type_id"))
		assert.Equal(t, "100", q.Get("limit"))
		assert.False(t, q.Has("material_id"))
		_, _ = w.Write([]byte(`{"count": 1, "artworks": [{"uri": "http://x/artwork/a1", "title": "T"}]}`))
	})

	list, err := c.ListArtworks(context.Background(), domain.ArtworkFilter{ArtistID: "grigorescu", TypeID: "painting", Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "a1", list.Artworks[0].ID())
}

func TestListArtworks_ErrorEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Failed to retrieve artworks", "count": 0, "artworks": []}`))
	})

	_, err := c.ListArtworks(context.Background(), domain.ArtworkFilter{})
	assert.ErrorIs(t, err, domain.ErrUpstreamResponse)
}

func TestGetArtist(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/artists/grigorescu", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"uri": "http://arp-greatteam.org/heritage-provenance/artist/grigorescu",
			"name": "Nicolae Grigorescu",
			"type": "Person",
			"wikidata_enrichment": {"wikidata_id": "Q359576", "data": {"birth_date": "1838-05-15"}},
			"external_links": [{"uri": "https://ulan", "source": "Getty ULAN"}]
		}`))
	})

	artist, err := c.GetArtist(context.Background(), "grigorescu")
	require.NoError(t, err)
	assert.Equal(t, "1838-05-15", artist.DisplayBirthDate())
	assert.Equal(t, "https://www.wikidata.org/wiki/Q359576", artist.WikidataURL())
	assert.Len(t, artist.ExternalLinks, 1)
}

func TestGetRecommendations(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recommendations/a1", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("max_results"))
		assert.Equal(t, "artist,period,type,location", r.URL.Query().Get("criteria"))
		_, _ = w.Write([]byte(`[{"artwork": {"uri": "http://x/artwork/a2", "title": "Other", "images": ["https://img/2.jpg"]}, "similarity_score": 0.72, "reasons": ["Same artist"]}]`))
	})

	recs, err := c.GetRecommendations(context.Background(), "a1", domain.RecommendationQuery{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 72, recs[0].MatchPercent())
	assert.Equal(t, "https://img/2.jpg", recs[0].Artwork.PrimaryImage())
}

func TestGetProvenance(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/provenance/a1", r.URL.Path)
		_, _ = w.Write([]byte(`{"artwork_uri": "http://x/artwork/a1", "events": [{"event_type": "Creation", "date": "1899"}]}`))
	})

	chain, err := c.GetProvenance(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "http://x/artwork/a1", chain.ArtworkURI)
	require.Len(t, chain.Events, 1)
	assert.Equal(t, "1899", chain.Events[0].Date)
}

func TestGetProvenance_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetProvenance(context.Background(), "a1")
	assert.ErrorIs(t, err, domain.ErrProvenanceNotFound)
}

func TestPing(t *testing.T) {
	healthy := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, healthy.Ping(context.Background()))

	sick := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.ErrorIs(t, sick.Ping(context.Background()), domain.ErrUpstreamUnavailable)
}

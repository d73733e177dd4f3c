package collectionapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"heritage-web/internal/config"
	"heritage-web/internal/core/domain"
	ports "heritage-web/internal/core/ports/output"
	"heritage-web/internal/requestid"
)

const maxBodyBytes = 8 << 20

type collectionClient struct {
	baseURL string
	client  *http.Client
}

// NewCollectionClient creates a client for the external collection API.
func NewCollectionClient(cfg *config.UpstreamConfig) ports.CollectionAPI {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &collectionClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// upstream error payload; the service answers 200 with {"error": "..."}
type errorEnvelope struct {
	Error *string `json:"error"`
}

func (c *collectionClient) getJSON(ctx context.Context, kind domain.RecordKind, id, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if rid := requestid.FromContext(ctx); rid != "" {
		req.Header.Set(requestid.Header, rid)
	}

	log.WithFields(log.Fields{
		"method": http.MethodGet,
		"url":    reqURL,
		"kind":   kind,
	}).Debug("requesting collection service")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: get %s: %w", domain.ErrUpstreamUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		if nf := kind.NotFound(); nf != nil {
			return nf
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: get %s: status %d", domain.ErrUpstreamResponse, path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", domain.ErrUpstreamUnavailable, path, err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env errorEnvelope
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Error != nil && *env.Error != "" {
			return &domain.UpstreamError{Kind: kind, ID: id, Message: *env.Error}
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", domain.ErrUpstreamResponse, kind, err)
	}
	return nil
}

func checkID(id string) error {
	if strings.TrimSpace(id) == "" || id == "." || id == ".." || strings.Contains(id, "/") {
		return domain.ErrInvalidID
	}
	return nil
}

// --- Artworks ---

func (c *collectionClient) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var artwork domain.Artwork
	path := "/api/artworks/" + url.PathEscape(id)
	if err := c.getJSON(ctx, domain.KindArtwork, id, path, nil, &artwork); err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (c *collectionClient) ListArtworks(ctx context.Context, filter domain.ArtworkFilter) (*domain.ArtworkList, error) {
	filter = filter.Normalize()

	params := url.Values{}
	setIfPresent(params, "type_id", filter.TypeID)
	setIfPresent(params, "material_id", filter.MaterialID)
	setIfPresent(params, "subject_id", filter.SubjectID)
	setIfPresent(params, "artist_id", filter.ArtistID)
	setIfPresent(params, "location_id", filter.LocationID)
	params.Set("limit", strconv.Itoa(filter.Limit))

	var list domain.ArtworkList
	if err := c.getJSON(ctx, domain.KindArtworks, "", "/api/artworks", params, &list); err != nil {
		return nil, err
	}
	if list.Artworks == nil {
		list.Artworks = []domain.Artwork{}
	}
	return &list, nil
}

// --- Artists ---

func (c *collectionClient) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var artist domain.Artist
	path := "/api/artists/" + url.PathEscape(id)
	if err := c.getJSON(ctx, domain.KindArtist, id, path, nil, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// --- Recommendations ---

func (c *collectionClient) GetRecommendations(ctx context.Context, id string, query domain.RecommendationQuery) ([]domain.Recommendation, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	query = query.Normalize()

	params := url.Values{}
	params.Set("max_results", strconv.Itoa(query.MaxResults))
	params.Set("criteria", strings.Join(query.Criteria, ","))

	var recs []domain.Recommendation
	path := "/api/recommendations/" + url.PathEscape(id)
	if err := c.getJSON(ctx, domain.KindRecommendation, id, path, params, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// --- Provenance ---

func (c *collectionClient) GetProvenance(ctx context.Context, id string) (*domain.ProvenanceChain, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var chain domain.ProvenanceChain
	path := "/api/provenance/" + url.PathEscape(id)
	if err := c.getJSON(ctx, domain.KindProvenance, id, path, nil, &chain); err != nil {
		return nil, err
	}
	return &chain, nil
}

func (c *collectionClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
	return nil
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"heritage-web/internal/adapters/primary/http/middleware"
	"heritage-web/internal/adapters/primary/http/views"
	"heritage-web/internal/core/domain"
	"heritage-web/internal/core/services"
	"heritage-web/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	_, r := setupRouter(t)

	w := get(r, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadyz(t *testing.T) {
	ok := ReadinessCheck{Name: "collection", Check: func(context.Context) error { return nil }}
	_, r := setupRouter(t, ok)

	w := get(r, "/readyz")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyz_Failing(t *testing.T) {
	ok := ReadinessCheck{Name: "collection", Check: func(context.Context) error { return nil }}
	bad := ReadinessCheck{Name: "database", Check: func(context.Context) error { return errors.New("connection refused") }}
	_, r := setupRouter(t, ok, bad)

	w := get(r, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp["status"])
	failures := resp["errors"].(map[string]interface{})
	assert.Equal(t, "connection refused", failures["database"])
	assert.NotContains(t, failures, "collection")
}

func TestRegisterRoutes_ProbesBypassPageMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	api := new(testutil.MockCollectionAPI)
	api.On("ListArtworks", mock.Anything, mock.Anything).Return(&domain.ArtworkList{}, nil)

	h := New(
		services.NewCatalogService(api, time.Second),
		services.NewArtworkPageService(api, nil, time.Second),
		services.NewArtistPageService(api, nil, time.Second),
		services.NewProvenancePageService(api, nil, time.Second),
	)
	tmpl, err := views.Load()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	h.RegisterRoutes(r, middleware.RateLimiter(0.001, 1))

	assert.Equal(t, http.StatusOK, get(r, "/artworks").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/artworks").Code)
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/healthz").Code)
		assert.Equal(t, http.StatusOK, get(r, "/readyz").Code)
	}
}

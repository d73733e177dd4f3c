package handlers

import (
	"context"

	"heritage-web/internal/core/services"

	"github.com/gin-gonic/gin"
)

// featuredCount is how many artworks the home page teases.
const featuredCount = 8

// ReadinessCheck is a dependency probed by /readyz.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Handler struct {
	catalogSvc    *services.CatalogService
	artworkSvc    *services.ArtworkPageService
	artistSvc     *services.ArtistPageService
	provenanceSvc *services.ProvenancePageService
	checks        []ReadinessCheck
}

func New(
	catalogSvc *services.CatalogService,
	artworkSvc *services.ArtworkPageService,
	artistSvc *services.ArtistPageService,
	provenanceSvc *services.ProvenancePageService,
	checks ...ReadinessCheck,
) *Handler {
	return &Handler{
		catalogSvc:    catalogSvc,
		artworkSvc:    artworkSvc,
		artistSvc:     artistSvc,
		provenanceSvc: provenanceSvc,
		checks:        checks,
	}
}

// RegisterRoutes mounts the pages behind pageMiddleware. Probes are mounted
// without it.
func (h *Handler) RegisterRoutes(r gin.IRouter, pageMiddleware ...gin.HandlerFunc) {
	// Pages
	pages := r.Group("/", pageMiddleware...)
	pages.GET("/", h.Home)
	pages.GET("/artworks", h.ListArtworks)
	pages.GET("/artworks/:id", h.GetArtwork)
	pages.GET("/artists/:id", h.GetArtist)
	pages.GET("/provenance/:id", h.GetProvenance)

	// Probes
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
}

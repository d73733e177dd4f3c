package handlers

import (
	"net/http"

	"heritage-web/internal/adapters/primary/http/dto"
	"heritage-web/internal/adapters/primary/http/views"
	"heritage-web/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Home(c *gin.Context) {
	featured := h.catalogSvc.Featured(c.Request.Context(), featuredCount)
	c.HTML(http.StatusOK, views.PageHome, views.NewHomeView(featured))
}

func (h *Handler) ListArtworks(c *gin.Context) {
	var q dto.ArtworkListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		renderDomainError(c, domain.KindArtworks, domain.ErrInvalidFilter)
		return
	}

	page, err := h.catalogSvc.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		renderDomainError(c, domain.KindArtworks, err)
		return
	}

	c.HTML(http.StatusOK, views.PageArtworks, views.NewCatalogView(page))
}

func (h *Handler) GetArtwork(c *gin.Context) {
	page, err := h.artworkSvc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderDomainError(c, domain.KindArtwork, err)
		return
	}

	c.HTML(http.StatusOK, views.PageArtwork, views.NewArtworkView(page))
}

func (h *Handler) GetArtist(c *gin.Context) {
	page, err := h.artistSvc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderDomainError(c, domain.KindArtist, err)
		return
	}

	c.HTML(http.StatusOK, views.PageArtist, views.NewArtistView(page))
}

func (h *Handler) GetProvenance(c *gin.Context) {
	page, err := h.provenanceSvc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderDomainError(c, domain.KindProvenance, err)
		return
	}

	c.HTML(http.StatusOK, views.PageProvenance, views.NewProvenanceView(page))
}

// NotFound renders the error panel for unknown routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, views.PageError, views.NewNotFoundView())
}

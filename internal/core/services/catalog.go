package services

import (
	"context"
	"time"

	"heritage-web/internal/core/domain"
	ports "heritage-web/internal/core/ports/output"
)

// CatalogPage is the collection listing.
type CatalogPage struct {
	Filter   domain.ArtworkFilter
	Count    int
	Artworks []domain.Artwork
}

// CatalogService lists artworks for the listing and home pages
type CatalogService struct {
	api              ports.CollectionAPI
	secondaryTimeout time.Duration
}

// NewCatalogService creates a new catalog service
func NewCatalogService(api ports.CollectionAPI, secondaryTimeout time.Duration) *CatalogService {
	return &CatalogService{api: api, secondaryTimeout: secondaryTimeout}
}

// List returns the artworks matching filter. Upstream failures fail the page.
func (s *CatalogService) List(ctx context.Context, filter domain.ArtworkFilter) (*CatalogPage, error) {
	filter = filter.Normalize()

	list, err := s.api.ListArtworks(ctx, filter)
	if err != nil {
		return nil, err
	}

	artworks := list.Artworks
	if artworks == nil {
		artworks = []domain.Artwork{}
	}
	count := list.Count
	if count < len(artworks) {
		count = len(artworks)
	}

	return &CatalogPage{
		Filter:   filter,
		Count:    count,
		Artworks: artworks,
	}, nil
}

// Featured returns up to n artworks for the home page; it never fails.
func (s *CatalogService) Featured(ctx context.Context, n int) []domain.Artwork {
	sctx, cancel := secondaryContext(ctx, s.secondaryTimeout)
	defer cancel()

	list, err := s.api.ListArtworks(sctx, domain.ArtworkFilter{Limit: n})
	if err != nil {
		logSecondaryFailure(ctx, ctx, domain.KindArtworks, "", err)
		return []domain.Artwork{}
	}
	if len(list.Artworks) > n {
		return list.Artworks[:n]
	}
	if list.Artworks == nil {
		return []domain.Artwork{}
	}
	return list.Artworks
}

package ports

import (
	"context"

	"heritage-web/internal/core/domain"
)

// CollectionAPI defines the contract for the external collection service.
type CollectionAPI interface {
	GetArtwork(ctx context.Context, id string) (*domain.Artwork, error)
	ListArtworks(ctx context.Context, filter domain.ArtworkFilter) (*domain.ArtworkList, error)
	GetArtist(ctx context.Context, id string) (*domain.Artist, error)
	GetRecommendations(ctx context.Context, id string, query domain.RecommendationQuery) ([]domain.Recommendation, error)
	GetProvenance(ctx context.Context, id string) (*domain.ProvenanceChain, error)

	// Health check
	Ping(ctx context.Context) error
}

package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"heritage-web/internal/core/domain"
	ports "heritage-web/internal/core/ports/output"
)

// ArtworkPage is everything the artwork detail page renders.
type ArtworkPage struct {
	ID              string
	Artwork         *domain.Artwork
	Recommendations []domain.Recommendation
	Stale           bool
	StaleSince      time.Time
}

// ArtworkPageService assembles the artwork detail page
type ArtworkPageService struct {
	api              ports.CollectionAPI
	snapshots        *Snapshotter
	secondaryTimeout time.Duration
}

// NewArtworkPageService creates a new artwork page service
func NewArtworkPageService(api ports.CollectionAPI, snapshots *Snapshotter, secondaryTimeout time.Duration) *ArtworkPageService {
	return &ArtworkPageService{
		api:              api,
		snapshots:        snapshots,
		secondaryTimeout: secondaryTimeout,
	}
}

// Load fetches the artwork and its recommendations concurrently. Only the
// artwork can fail the page.
func (s *ArtworkPageService) Load(ctx context.Context, id string) (*ArtworkPage, error) {
	page := &ArtworkPage{ID: id, Recommendations: []domain.Recommendation{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		artwork, err := s.api.GetArtwork(gctx, id)
		if err != nil {
			return err
		}
		page.Artwork = artwork
		return nil
	})

	if id != "" {
		g.Go(func() error {
			sctx, cancel := secondaryContext(gctx, s.secondaryTimeout)
			defer cancel()

			recs, err := s.api.GetRecommendations(sctx, id, domain.RecommendationQuery{})
			if err != nil {
				logSecondaryFailure(ctx, gctx, domain.KindRecommendation, id, err)
				return nil
			}
			if recs != nil {
				page.Recommendations = recs
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var artwork domain.Artwork
		fetchedAt, ok := s.snapshots.Recover(ctx, domain.KindArtwork, id, err, &artwork)
		if !ok {
			return nil, err
		}
		page.Artwork = &artwork
		page.Stale = true
		page.StaleSince = fetchedAt
		return page, nil
	}

	s.snapshots.Store(ctx, domain.KindArtwork, id, page.Artwork)
	return page, nil
}

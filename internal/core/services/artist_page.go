package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"heritage-web/internal/core/domain"
	ports "heritage-web/internal/core/ports/output"
)

// ArtistPage is everything the artist profile page renders.
type ArtistPage struct {
	ID         string
	Artist     *domain.Artist
	Artworks   []domain.Artwork
	Stale      bool
	StaleSince time.Time
}

// ArtistPageService assembles the artist profile page
type ArtistPageService struct {
	api              ports.CollectionAPI
	snapshots        *Snapshotter
	secondaryTimeout time.Duration
}

// NewArtistPageService creates a new artist page service
func NewArtistPageService(api ports.CollectionAPI, snapshots *Snapshotter, secondaryTimeout time.Duration) *ArtistPageService {
	return &ArtistPageService{
		api:              api,
		snapshots:        snapshots,
		secondaryTimeout: secondaryTimeout,
	}
}

// Load fetches the artist profile and the artist's works concurrently.
func (s *ArtistPageService) Load(ctx context.Context, id string) (*ArtistPage, error) {
	page := &ArtistPage{ID: id, Artworks: []domain.Artwork{}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		artist, err := s.api.GetArtist(gctx, id)
		if err != nil {
			return err
		}
		page.Artist = artist
		return nil
	})

	if id != "" {
		g.Go(func() error {
			sctx, cancel := secondaryContext(gctx, s.secondaryTimeout)
			defer cancel()

			list, err := s.api.ListArtworks(sctx, domain.ArtworkFilter{
				ArtistID: id,
				Limit:    domain.ArtistArtworksLimit,
			})
			if err != nil {
				logSecondaryFailure(ctx, gctx, domain.KindArtworks, id, err)
				return nil
			}
			if list.Artworks != nil {
				page.Artworks = list.Artworks
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var artist domain.Artist
		fetchedAt, ok := s.snapshots.Recover(ctx, domain.KindArtist, id, err, &artist)
		if !ok {
			return nil, err
		}
		page.Artist = &artist
		page.Stale = true
		page.StaleSince = fetchedAt
		return page, nil
	}

	s.snapshots.Store(ctx, domain.KindArtist, id, page.Artist)
	return page, nil
}

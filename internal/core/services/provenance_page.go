package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"heritage-web/internal/core/domain"
	ports "heritage-web/internal/core/ports/output"
)

// ProvenancePage is everything the provenance chain page renders.
type ProvenancePage struct {
	ID         string
	Chain      *domain.ProvenanceChain
	Artwork    *domain.Artwork
	Artist     *domain.Artist
	Stale      bool
	StaleSince time.Time
}

// ProvenancePageService assembles the provenance chain page
type ProvenancePageService struct {
	api              ports.CollectionAPI
	snapshots        *Snapshotter
	secondaryTimeout time.Duration
}

// NewProvenancePageService creates a new provenance page service
func NewProvenancePageService(api ports.CollectionAPI, snapshots *Snapshotter, secondaryTimeout time.Duration) *ProvenancePageService {
	return &ProvenancePageService{
		api:              api,
		snapshots:        snapshots,
		secondaryTimeout: secondaryTimeout,
	}
}

// Load fetches the provenance chain and the artwork concurrently. The artist
// profile is requested only once the artwork names a real artist.
func (s *ProvenancePageService) Load(ctx context.Context, id string) (*ProvenancePage, error) {
	page := &ProvenancePage{ID: id}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		chain, err := s.api.GetProvenance(gctx, id)
		if err != nil {
			return err
		}
		if chain.Events == nil {
			chain.Events = []domain.ProvenanceEvent{}
		}
		page.Chain = chain
		return nil
	})

	if id != "" {
		g.Go(func() error {
			sctx, cancel := secondaryContext(gctx, s.secondaryTimeout)
			defer cancel()

			artwork, err := s.api.GetArtwork(sctx, id)
			if err != nil {
				logSecondaryFailure(ctx, gctx, domain.KindArtwork, id, err)
				return nil
			}
			page.Artwork = artwork

			if artwork.Artist.IsPlaceholder() {
				return nil
			}
			artistID := domain.IDFromURI(artwork.Artist.URI)
			artist, err := s.api.GetArtist(sctx, artistID)
			if err != nil {
				logSecondaryFailure(ctx, gctx, domain.KindArtist, artistID, err)
				return nil
			}
			page.Artist = artist
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var chain domain.ProvenanceChain
		fetchedAt, ok := s.snapshots.Recover(ctx, domain.KindProvenance, id, err, &chain)
		if !ok {
			return nil, err
		}
		if chain.Events == nil {
			chain.Events = []domain.ProvenanceEvent{}
		}
		page.Chain = &chain
		page.Stale = true
		page.StaleSince = fetchedAt
		return page, nil
	}

	s.snapshots.Store(ctx, domain.KindProvenance, id, page.Chain)
	return page, nil
}

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"heritage-web/internal/core/domain"
	ports "heritage-web/internal/core/ports/output"
)

// MockCollectionAPI is a mock of CollectionAPI.
type MockCollectionAPI struct {
	mock.Mock
}

func (m *MockCollectionAPI) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artwork), args.Error(1)
}

func (m *MockCollectionAPI) ListArtworks(ctx context.Context, filter domain.ArtworkFilter) (*domain.ArtworkList, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArtworkList), args.Error(1)
}

func (m *MockCollectionAPI) GetArtist(ctx context.Context, id string) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockCollectionAPI) GetRecommendations(ctx context.Context, id string, query domain.RecommendationQuery) ([]domain.Recommendation, error) {
	args := m.Called(ctx, id, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recommendation), args.Error(1)
}

func (m *MockCollectionAPI) GetProvenance(ctx context.Context, id string) (*domain.ProvenanceChain, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProvenanceChain), args.Error(1)
}

func (m *MockCollectionAPI) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSnapshotRepo is a mock of SnapshotRepository.
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Save(ctx context.Context, snapshot *ports.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepo) Get(ctx context.Context, kind domain.RecordKind, recordID string) (*ports.Snapshot, error) {
	args := m.Called(ctx, kind, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

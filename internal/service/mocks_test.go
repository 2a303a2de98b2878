package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cangzhang/kaset/internal/ytmusic"
)

type MockMusic struct {
	mock.Mock
}

func (m *MockMusic) Home(ctx context.Context) ([]ytmusic.HomeSection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ytmusic.HomeSection), args.Error(1)
}

func (m *MockMusic) Explore(ctx context.Context) ([]ytmusic.HomeSection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ytmusic.HomeSection), args.Error(1)
}

func (m *MockMusic) Search(ctx context.Context, query string) (ytmusic.SearchResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return ytmusic.SearchResponse{}, args.Error(1)
	}
	return args.Get(0).(ytmusic.SearchResponse), args.Error(1)
}

func (m *MockMusic) Playlist(ctx context.Context, id string) (ytmusic.PlaylistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return ytmusic.PlaylistDetail{}, args.Error(1)
	}
	return args.Get(0).(ytmusic.PlaylistDetail), args.Error(1)
}

func (m *MockMusic) Artist(ctx context.Context, id string) (ytmusic.ArtistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return ytmusic.ArtistDetail{}, args.Error(1)
	}
	return args.Get(0).(ytmusic.ArtistDetail), args.Error(1)
}

func (m *MockMusic) Rate(ctx context.Context, videoID string, rating ytmusic.Rating) error {
	args := m.Called(ctx, videoID, rating)
	return args.Error(0)
}

func (m *MockMusic) EditLibrary(ctx context.Context, feedbackToken string) error {
	args := m.Called(ctx, feedbackToken)
	return args.Error(0)
}

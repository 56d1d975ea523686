package http_test

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/domain"
)

type mockTrackService struct{ mock.Mock }

func (m *mockTrackService) ListTracks(ctx context.Context, page, limit int) (*domain.TrackPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackPage), args.Error(1)
}

func (m *mockTrackService) CreateTrack(ctx context.Context, title, url, storageKey string) (*domain.Track, error) {
	args := m.Called(ctx, title, url, storageKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Track), args.Error(1)
}

type mockFileService struct{ mock.Mock }

func (m *mockFileService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (string, string, error) {
	args := m.Called(ctx, file, header, folder)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockFileService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

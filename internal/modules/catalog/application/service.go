package application

import (
	"context"
	"strings"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/domain"
)

// PageCache caches listing envelopes keyed by (page, limit). Implementations
// must treat every failure as a miss; the cache is never load-bearing.
type PageCache interface {
	Get(ctx context.Context, page, limit int) (*domain.TrackPage, bool)
	Set(ctx context.Context, page, limit int, envelope *domain.TrackPage)
	Invalidate(ctx context.Context)
}

type TrackService interface {
	ListTracks(ctx context.Context, page, limit int) (*domain.TrackPage, error)
	CreateTrack(ctx context.Context, title, url, storageKey string) (*domain.Track, error)
}

type trackService struct {
	repo  domain.TrackRepository
	cache PageCache
}

// NewTrackService creates the track service. cache may be nil, in which case
// every listing goes straight to the repository.
func NewTrackService(repo domain.TrackRepository, cache PageCache) TrackService {
	return &trackService{repo: repo, cache: cache}
}

func (s *trackService) ListTracks(ctx context.Context, page, limit int) (*domain.TrackPage, error) {
	if page < 1 {
		return nil, domain.ErrInvalidPage
	}
	if limit < 1 {
		return nil, domain.ErrInvalidLimit
	}

	if s.cache != nil {
		if envelope, ok := s.cache.Get(ctx, page, limit); ok {
			return envelope, nil
		}
	}

	offset := (page - 1) * limit
	tracks, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	envelope := &domain.TrackPage{
		Tracks:      tracks,
		CurrentPage: page,
		TotalPages:  (total + limit - 1) / limit,
		TotalTracks: total,
	}

	if s.cache != nil {
		s.cache.Set(ctx, page, limit, envelope)
	}

	return envelope, nil
}

func (s *trackService) CreateTrack(ctx context.Context, title, url, storageKey string) (*domain.Track, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrTitleRequired
	}
	if url == "" || storageKey == "" {
		return nil, domain.ErrFileRequired
	}

	track := &domain.Track{
		Title:      title,
		URL:        url,
		StorageKey: storageKey,
	}

	if err := s.repo.Create(ctx, track); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	return track, nil
}

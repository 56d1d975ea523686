package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/domain"
)

// TrackResponse is the public track shape
type TrackResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`
}

// TrackListResponse is the paginated listing envelope
type TrackListResponse struct {
	Tracks      []TrackResponse `json:"tracks"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	TotalTracks int             `json:"totalTracks"`
}

func ToTrackResponse(track *domain.Track) *TrackResponse {
	return &TrackResponse{
		ID:         track.ID,
		Title:      track.Title,
		URL:        track.URL,
		StorageKey: track.StorageKey,
		CreatedAt:  track.CreatedAt,
	}
}

func ToTrackListResponse(page *domain.TrackPage) *TrackListResponse {
	tracks := make([]TrackResponse, len(page.Tracks))
	for i := range page.Tracks {
		tracks[i] = *ToTrackResponse(&page.Tracks[i])
	}
	return &TrackListResponse{
		Tracks:      tracks,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalTracks: page.TotalTracks,
	}
}

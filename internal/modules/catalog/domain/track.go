package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Track represents one downloadable audio sample
type Track struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	URL        string    `json:"url" db:"url"`
	StorageKey string    `json:"storage_key" db:"storage_key"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// TrackPage is the envelope returned by paginated track listings
type TrackPage struct {
	Tracks      []Track `json:"tracks"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	TotalTracks int     `json:"totalTracks"`
}

// TrackRepository defines the contract for track data access
type TrackRepository interface {
	Create(ctx context.Context, track *Track) error
	List(ctx context.Context, limit, offset int) ([]Track, int, error)
}

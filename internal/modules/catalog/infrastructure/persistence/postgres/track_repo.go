package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog/domain"
)

type PgTrackRepository struct {
	db *sqlx.DB
}

func NewTrackRepository(db *sqlx.DB) *PgTrackRepository {
	return &PgTrackRepository{db: db}
}

func (r *PgTrackRepository) Create(ctx context.Context, track *domain.Track) error {
	if track.ID == uuid.Nil {
		track.ID = uuid.New()
	}
	if track.CreatedAt.IsZero() {
		track.CreatedAt = time.Now()
	}

	query := `
        INSERT INTO tracks (id, title, url, storage_key, created_at)
        VALUES (:id, :title, :url, :storage_key, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, track)
	return err
}

func (r *PgTrackRepository) List(ctx context.Context, limit, offset int) ([]domain.Track, int, error) {
	// Use a struct to hold the result including the window function count
	var results []struct {
		domain.Track
		TotalCount int `db:"total_count"`
	}

	query := `
		SELECT t.*, COUNT(*) OVER() AS total_count
		FROM tracks t
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	err := r.db.SelectContext(ctx, &results, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if len(results) == 0 {
		// Offset past the end (or empty table) yields no rows, so the window
		// count is unavailable; fetch the total separately.
		var total int
		if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM tracks`); err != nil {
			return nil, 0, err
		}
		return []domain.Track{}, total, nil
	}

	total := results[0].TotalCount
	tracks := make([]domain.Track, len(results))
	for i, res := range results {
		tracks[i] = res.Track
	}

	return tracks, total, nil
}

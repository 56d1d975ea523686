package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/domain"
)

const uniqueViolation = "23505"

type PgSubscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) *PgSubscriberRepository {
	return &PgSubscriberRepository{db: db}
}

func (r *PgSubscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	if subscriber.ID == uuid.Nil {
		subscriber.ID = uuid.New()
	}
	if subscriber.CreatedAt.IsZero() {
		subscriber.CreatedAt = time.Now()
	}

	query := `
        INSERT INTO subscribers (id, email, created_at)
        VALUES (:id, :email, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, subscriber)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Subscriber represents one captured email address
type Subscriber struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

var (
	ErrEmailRequired = errors.New("email is required")

	// ErrAlreadySubscribed is returned by the repository when the unique
	// index on email rejects the insert. Duplicate detection lives in the
	// database so two concurrent subscriptions cannot both slip past a
	// pre-check.
	ErrAlreadySubscribed = errors.New("email is already subscribed")
)

// SubscriberRepository defines the contract for subscriber data access
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *Subscriber) error
}

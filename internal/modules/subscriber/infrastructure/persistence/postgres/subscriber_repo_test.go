package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/domain"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/infrastructure/persistence/postgres"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(sqlDB, "sqlmock"), mock, func() { _ = sqlDB.Close() }
}

func TestSubscriberRepo_Create(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	repo := postgres.NewSubscriberRepository(db)

	mock.ExpectExec(`INSERT INTO subscribers`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	sub := &domain.Subscriber{Email: "fan@roger-keys.io"}
	err := repo.Create(context.Background(), sub)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriberRepo_Create_UniqueViolationMapsToAlreadySubscribed(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	repo := postgres.NewSubscriberRepository(db)

	mock.ExpectExec(`INSERT INTO subscribers`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "subscribers_email_key"})

	err := repo.Create(context.Background(), &domain.Subscriber{Email: "fan@roger-keys.io"})
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
}

func TestSubscriberRepo_Create_OtherErrorPropagates(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	repo := postgres.NewSubscriberRepository(db)

	mock.ExpectExec(`INSERT INTO subscribers`).WillReturnError(assert.AnError)

	err := repo.Create(context.Background(), &domain.Subscriber{Email: "fan@roger-keys.io"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadySubscribed)
}

package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/application"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/domain"
)

type mockSubscriberRepo struct{ mock.Mock }

func (m *mockSubscriberRepo) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	args := m.Called(ctx, subscriber)
	return args.Error(0)
}

func TestSubscribe_NewEmail(t *testing.T) {
	repo := new(mockSubscriberRepo)
	svc := application.NewSubscriberService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Subscriber) bool {
		return s.Email == "fan@roger-keys.io"
	})).Return(nil).Once()

	created, err := svc.Subscribe(context.Background(), "fan@roger-keys.io")
	require.NoError(t, err)
	assert.True(t, created)
	repo.AssertExpectations(t)
}

func TestSubscribe_DuplicateIsNoOpSuccess(t *testing.T) {
	repo := new(mockSubscriberRepo)
	svc := application.NewSubscriberService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadySubscribed).Once()

	created, err := svc.Subscribe(context.Background(), "fan@roger-keys.io")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSubscribe_EmptyEmail(t *testing.T) {
	repo := new(mockSubscriberRepo)
	svc := application.NewSubscriberService(repo)

	_, err := svc.Subscribe(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmailRequired)

	_, err = svc.Subscribe(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmailRequired)

	repo.AssertNotCalled(t, "Create")
}

func TestSubscribe_StorageError(t *testing.T) {
	repo := new(mockSubscriberRepo)
	svc := application.NewSubscriberService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := svc.Subscribe(context.Background(), "fan@roger-keys.io")
	assert.Error(t, err)
}

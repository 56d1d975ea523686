package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/domain"
	"github.com/JESURAJA7/Roger-Keys/internal/shared/utils"
)

type SubscriberService interface {
	// Subscribe records an email address. created reports whether a new
	// record was stored; a repeated email succeeds with created=false.
	Subscribe(ctx context.Context, email string) (created bool, err error)
}

type subscriberService struct {
	repo domain.SubscriberRepository
}

func NewSubscriberService(repo domain.SubscriberRepository) SubscriberService {
	return &subscriberService{repo: repo}
}

func (s *subscriberService) Subscribe(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, domain.ErrEmailRequired
	}

	// Format enforcement lives client-side; odd shapes are stored anyway.
	if !utils.IsValidEmail(email) {
		slog.Debug("subscribing email with unusual shape", "email", email)
	}

	err := s.repo.Create(ctx, &domain.Subscriber{Email: email})
	if errors.Is(err, domain.ErrAlreadySubscribed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

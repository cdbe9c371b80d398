package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"authorsite-backend/internal/domains/newsletter"
	"authorsite-backend/internal/shared"
	"authorsite-backend/pkg/logger"
)

type newsletterService struct {
	repo        newsletter.Repository
	asynqClient *asynq.Client
}

// NewNewsletterService creates a newsletter service. asynqClient may be
// nil, in which case subscriber notifications are skipped.
func NewNewsletterService(repo newsletter.Repository, asynqClient *asynq.Client) newsletter.Service {
	return &newsletterService{
		repo:        repo,
		asynqClient: asynqClient,
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *newsletter.SubscribeRequest) (*newsletter.Subscriber, error) {
	// Normalize before validating so padded or mixed-case input is
	// judged in its canonical form.
	email := newsletter.NormalizeEmail(req.Email)
	normalized := newsletter.SubscribeRequest{Email: email}
	if err := normalized.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", newsletter.ErrInvalidEmail, err.Error())
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Active {
			return nil, newsletter.ErrAlreadySubscribed
		}
		sub, err := s.repo.Reactivate(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		s.enqueueNotification(sub)
		return sub, nil
	}

	sub, err := s.repo.Create(ctx, email)
	if err != nil {
		// A concurrent subscribe may have inserted between the lookup
		// and the insert; the unique index reports it as a conflict.
		if errors.Is(err, newsletter.ErrAlreadySubscribed) {
			return nil, newsletter.ErrAlreadySubscribed
		}
		return nil, err
	}

	s.enqueueNotification(sub)
	return sub, nil
}

func (s *newsletterService) List(ctx context.Context) ([]newsletter.Subscriber, error) {
	return s.repo.List(ctx)
}

// enqueueNotification hands the new subscriber to the worker. Delivery
// is best-effort: a broker outage must not fail the signup.
func (s *newsletterService) enqueueNotification(sub *newsletter.Subscriber) {
	if s.asynqClient == nil {
		return
	}

	payload, err := json.Marshal(shared.NotifySubscriberPayload{
		SubscriberID: sub.ID.String(),
		Email:        sub.Email,
	})
	if err != nil {
		logger.Error("failed to marshal subscriber notification payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeNotifyNewSubscriber, payload)
	if _, err := s.asynqClient.Enqueue(task, asynq.Queue("default"), asynq.MaxRetry(3)); err != nil {
		logger.Error("failed to enqueue subscriber notification", err)
	}
}

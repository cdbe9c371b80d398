package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"authorsite-backend/internal/domains/contact"
	"authorsite-backend/internal/shared"
	"authorsite-backend/pkg/logger"
)

type contactService struct {
	repo        contact.Repository
	asynqClient *asynq.Client
}

// NewContactService creates a contact service. asynqClient may be nil,
// in which case inquiry notifications are skipped.
func NewContactService(repo contact.Repository, asynqClient *asynq.Client) contact.Service {
	return &contactService{
		repo:        repo,
		asynqClient: asynqClient,
	}
}

func (s *contactService) Submit(ctx context.Context, req *contact.CreateInquiryRequest) (*contact.Inquiry, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", contact.ErrInvalidInquiry, err.Error())
	}

	inquiry, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	s.enqueueNotification(inquiry)
	return inquiry, nil
}

func (s *contactService) List(ctx context.Context) ([]contact.Inquiry, error) {
	return s.repo.List(ctx)
}

// enqueueNotification hands the inquiry to the worker. Delivery is
// best-effort: a broker outage must not fail the submission.
func (s *contactService) enqueueNotification(inquiry *contact.Inquiry) {
	if s.asynqClient == nil {
		return
	}

	payload, err := json.Marshal(shared.NotifyInquiryPayload{
		InquiryID: inquiry.ID.String(),
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Subject:   inquiry.Subject,
		Message:   inquiry.Message,
	})
	if err != nil {
		logger.Error("failed to marshal inquiry notification payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeNotifyNewInquiry, payload)
	if _, err := s.asynqClient.Enqueue(task, asynq.Queue("default"), asynq.MaxRetry(3)); err != nil {
		logger.Error("failed to enqueue inquiry notification", err)
	}
}

package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"authorsite-backend/internal/infrastructure/email"
	"authorsite-backend/internal/shared"
)

// InquiryNotifyHandler processes notify:new_inquiry tasks.
type InquiryNotifyHandler struct {
	notifier email.NotifierService
}

func NewInquiryNotifyHandler(notifier email.NotifierService) *InquiryNotifyHandler {
	return &InquiryNotifyHandler{notifier: notifier}
}

func (h *InquiryNotifyHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p shared.NotifyInquiryPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal inquiry payload: %w", err)
	}

	return h.notifier.SendInquiryNotification(ctx, email.InquiryNotification{
		Name:    p.Name,
		Email:   p.Email,
		Subject: p.Subject,
		Message: p.Message,
	})
}

// SubscriberNotifyHandler processes notify:new_subscriber tasks.
type SubscriberNotifyHandler struct {
	notifier email.NotifierService
}

func NewSubscriberNotifyHandler(notifier email.NotifierService) *SubscriberNotifyHandler {
	return &SubscriberNotifyHandler{notifier: notifier}
}

func (h *SubscriberNotifyHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p shared.NotifySubscriberPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal subscriber payload: %w", err)
	}

	return h.notifier.SendSubscriberNotification(ctx, email.SubscriberNotification{
		Email: p.Email,
	})
}

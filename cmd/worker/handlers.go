package main

import (
	"github.com/hibiken/asynq"

	"authorsite-backend/internal/infrastructure/email"
	emailjob "authorsite-backend/internal/infrastructure/email/job"
	"authorsite-backend/internal/shared"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	inquiryNotify    *emailjob.InquiryNotifyHandler
	subscriberNotify *emailjob.SubscriberNotifyHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(cfg *Config) *HandlerRegistry {
	notifier := email.NewDevNotifierService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.AdminEmail)

	return &HandlerRegistry{
		inquiryNotify:    emailjob.NewInquiryNotifyHandler(notifier),
		subscriberNotify: emailjob.NewSubscriberNotifyHandler(notifier),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeNotifyNewInquiry, h.inquiryNotify.ProcessTask)
	mux.HandleFunc(shared.TypeNotifyNewSubscriber, h.subscriberNotify.ProcessTask)
}

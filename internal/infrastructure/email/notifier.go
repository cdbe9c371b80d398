package email

import (
	"context"
	"fmt"
	"net/smtp"

	"authorsite-backend/pkg/logger"
)

// InquiryNotification carries the fields rendered into the admin email
// when a visitor submits the contact form.
type InquiryNotification struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubscriberNotification is sent when someone joins the newsletter.
type SubscriberNotification struct {
	Email string
}

type NotifierService interface {
	SendInquiryNotification(ctx context.Context, data InquiryNotification) error
	SendSubscriberNotification(ctx context.Context, data SubscriberNotification) error
}

type smtpNotifierService struct {
	smtpAddr string
	smtpFrom string
	adminTo  string
}

func NewDevNotifierService(smtpHost, smtpPort, from, adminTo string) NotifierService {
	return &smtpNotifierService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
		adminTo:  adminTo,
	}
}

func (s *smtpNotifierService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))
	return smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg)
}

func (s *smtpNotifierService) SendInquiryNotification(ctx context.Context, data InquiryNotification) error {
	if s.adminTo == "" {
		// No admin address configured; nothing to deliver.
		return nil
	}

	subject := "New contact inquiry"
	if data.Subject != "" {
		subject = "New contact inquiry: " + data.Subject
	}
	body := fmt.Sprintf(`A new inquiry was submitted on the website.

From:    %s <%s>
Message:

%s`, data.Name, data.Email, data.Message)

	if err := s.send(s.adminTo, subject, body); err != nil {
		logger.Info("Failed to send inquiry notification", map[string]interface{}{
			"error":     err.Error(),
			"to":        s.adminTo,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *smtpNotifierService) SendSubscriberNotification(ctx context.Context, data SubscriberNotification) error {
	if s.adminTo == "" {
		return nil
	}

	body := fmt.Sprintf("A new reader subscribed to the newsletter: %s", data.Email)

	if err := s.send(s.adminTo, "New newsletter subscriber", body); err != nil {
		logger.Info("Failed to send subscriber notification", map[string]interface{}{
			"error":     err.Error(),
			"to":        s.adminTo,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
